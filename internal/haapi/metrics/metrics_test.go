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

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/haapi-client/internal/haapi/model"
)

type MetricsTestSuite struct {
	suite.Suite
	registry *prometheus.Registry
	metrics  *Metrics
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}

func (suite *MetricsTestSuite) SetupTest() {
	suite.registry = prometheus.NewRegistry()
	suite.metrics = New(suite.registry)
}

// counterValue returns the value of the counter with the given label value.
func (suite *MetricsTestSuite) counterValue(name, labelValue string) float64 {
	families, err := suite.registry.Gather()
	require.NoError(suite.T(), err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetValue() == labelValue {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func (suite *MetricsTestSuite) TestUnknownTypesShareOneSeries() {
	suite.metrics.IncrementParsed(model.ResolveRepresentationType("future-step"))
	suite.metrics.IncrementParsed(model.ResolveRepresentationType("another-future-step"))
	suite.metrics.IncrementParsed(model.UnknownRepresentationType("unknown"))

	assert.Equal(suite.T(), 3.0, suite.counterValue("haapi_representations_parsed_total", LabelUnknown))
	assert.Equal(suite.T(), 0.0, suite.counterValue("haapi_representations_parsed_total", "future-step"))

	families, err := suite.registry.Gather()
	require.NoError(suite.T(), err)
	for _, family := range families {
		if family.GetName() == "haapi_representations_parsed_total" {
			assert.Len(suite.T(), family.GetMetric(), 1)
		}
	}
}

func (suite *MetricsTestSuite) TestCounters() {
	suite.metrics.IncrementParsed(model.RepresentationTypeAuthenticationStep)
	suite.metrics.IncrementParsed(model.RepresentationTypeAuthenticationStep)
	suite.metrics.IncrementParsed(model.RepresentationTypePollingStep)
	suite.metrics.IncrementParseError(ParseKindProblem)
	suite.metrics.IncrementStep("Redirect")

	assert.Equal(suite.T(), 2.0, suite.counterValue("haapi_representations_parsed_total", "authentication-step"))
	assert.Equal(suite.T(), 1.0, suite.counterValue("haapi_representations_parsed_total", "polling-step"))
	assert.Equal(suite.T(), 1.0, suite.counterValue("haapi_parse_errors_total", ParseKindProblem))
	assert.Equal(suite.T(), 0.0, suite.counterValue("haapi_parse_errors_total", ParseKindTokens))
	assert.Equal(suite.T(), 1.0, suite.counterValue("haapi_steps_classified_total", "Redirect"))
}

func (suite *MetricsTestSuite) TestObserveRequest() {
	suite.metrics.ObserveRequest("submit", time.Now().Add(-100*time.Millisecond))

	families, err := suite.registry.Gather()
	require.NoError(suite.T(), err)
	var found bool
	for _, family := range families {
		if family.GetName() == "haapi_request_duration_seconds" {
			found = true
			require.Len(suite.T(), family.GetMetric(), 1)
			assert.Equal(suite.T(), uint64(1), family.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
	assert.True(suite.T(), found)
}

func (suite *MetricsTestSuite) TestNilRegistererUsesPrivateRegistry() {
	first := New(nil)
	second := New(nil)
	first.IncrementStep("Redirect")
	second.IncrementStep("Redirect")
	assert.NotSame(suite.T(), first.StepsClassified, second.StepsClassified)
}

func (suite *MetricsTestSuite) TestDuplicateRegistrationPanics() {
	assert.Panics(suite.T(), func() {
		New(suite.registry)
	})
}
