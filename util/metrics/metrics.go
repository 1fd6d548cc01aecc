// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package metrics

// MetricName describes the name and description of a single metric
type MetricName struct {
	Name        string
	Description string
}

var (
	// CryptoKeypairsGeneratedTotal Total number of keypairs generated
	CryptoKeypairsGeneratedTotal = MetricName{Name: "edsignd_crypto_keypairs_generated_total", Description: "Total number of keypairs generated"}
	// CryptoSignaturesTotal Total number of messages signed
	CryptoSignaturesTotal = MetricName{Name: "edsignd_crypto_signatures_total", Description: "Total number of messages signed"}
	// CryptoOpenTotal Total number of single signed messages opened, by result
	CryptoOpenTotal = MetricName{Name: "edsignd_crypto_open_total", Description: "Total number of single signed messages opened, by result"}
	// BatchRequestsTotal Total number of batch open requests
	BatchRequestsTotal = MetricName{Name: "edsignd_batch_requests_total", Description: "Total number of batch open requests"}
	// BatchItemsTotal Total number of batch items verified, by result
	BatchItemsTotal = MetricName{Name: "edsignd_batch_items_total", Description: "Total number of batch items verified, by result"}
	// BatchSize Number of items per batch request
	BatchSize = MetricName{Name: "edsignd_batch_size", Description: "Number of items per batch request"}
	// APIRequestsTotal Total number of REST requests, by route and status code
	APIRequestsTotal = MetricName{Name: "edsignd_api_requests_total", Description: "Total number of REST requests, by route and status code"}
	// APIRequestDuration Time spent serving REST requests, by route
	APIRequestDuration = MetricName{Name: "edsignd_api_request_duration_seconds", Description: "Time spent serving REST requests, by route"}
)

// Result label values.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)
