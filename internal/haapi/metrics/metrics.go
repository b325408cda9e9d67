/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package metrics provides observability for the HAAPI client pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/asgardeo/haapi-client/internal/haapi/model"
)

// LabelUnknown is the type label of representations with an unrecognized type.
const LabelUnknown = "unknown"

// Parse error kinds.
const (
	ParseKindRepresentation = "representation"
	ParseKindProblem        = "problem"
	ParseKindTokens         = "tokens"
)

// Metrics tracks parsed documents, classified steps and server round trips.
type Metrics struct {
	RepresentationsParsed *prometheus.CounterVec
	ParseErrors           *prometheus.CounterVec
	StepsClassified       *prometheus.CounterVec
	RequestDuration       *prometheus.HistogramVec
}

// New creates the metrics and registers them with reg. A nil registerer uses a
// private registry so that several clients can live in one process.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)
	return &Metrics{
		RepresentationsParsed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "haapi_representations_parsed_total",
			Help: "Total number of representations parsed, by representation type",
		}, []string{"type"}),
		ParseErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "haapi_parse_errors_total",
			Help: "Total number of documents that failed to parse, by document kind",
		}, []string{"kind"}),
		StepsClassified: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "haapi_steps_classified_total",
			Help: "Total number of steps produced, by step",
		}, []string{"step"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "haapi_request_duration_seconds",
			Help:    "Duration of requests sent to the authentication server",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
	}
}

// IncrementParsed records a parsed representation of the given type. Types
// outside the known set share the LabelUnknown series.
func (m *Metrics) IncrementParsed(representationType model.RepresentationType) {
	label := LabelUnknown
	if !representationType.IsUnknown() {
		label = representationType.String()
	}
	m.RepresentationsParsed.WithLabelValues(label).Inc()
}

// IncrementParseError records a document of the given kind that failed to parse.
func (m *Metrics) IncrementParseError(kind string) {
	m.ParseErrors.WithLabelValues(kind).Inc()
}

// IncrementStep records a produced step.
func (m *Metrics) IncrementStep(stepName string) {
	m.StepsClassified.WithLabelValues(stepName).Inc()
}

// ObserveRequest records the duration of a request.
// Call with time.Now() at the start of the request.
func (m *Metrics) ObserveRequest(operation string, start time.Time) {
	m.RequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
