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

package model

import (
	"slices"
)

// RepresentationType is the discriminator of a representation or a problem document.
// Values that are not part of the known set resolve to an unknown type carrying the
// original string.
type RepresentationType struct {
	value string
	known bool
}

// Known representation types.
var (
	RepresentationTypeAuthenticationStep         = RepresentationType{"authentication-step", true}
	RepresentationTypeRedirectionStep            = RepresentationType{"redirection-step", true}
	RepresentationTypeRegistrationStep           = RepresentationType{"registration-step", true}
	RepresentationTypePollingStep                = RepresentationType{"polling-step", true}
	RepresentationTypeContinueSameStep           = RepresentationType{"continue-same-step", true}
	RepresentationTypeConsentorStep              = RepresentationType{"consentor-step", true}
	RepresentationTypeUserConsentStep            = RepresentationType{"user-consent-step", true}
	RepresentationTypeOAuthAuthorizationResponse = RepresentationType{"oauth-authorization-response", true}

	RepresentationTypeIncorrectCredentialsProblem = RepresentationType{
		"https://curity.se/problems/incorrect-credentials", true}
	RepresentationTypeInvalidInputProblem = RepresentationType{
		"https://curity.se/problems/invalid-input", true}
	RepresentationTypeUnexpectedProblem = RepresentationType{
		"https://curity.se/problems/unexpected", true}
	RepresentationTypeAuthorizationResponseProblem = RepresentationType{
		"https://curity.se/problems/error-authorization-response", true}
)

var representationTypes = indexRepresentationTypes(
	RepresentationTypeAuthenticationStep,
	RepresentationTypeRedirectionStep,
	RepresentationTypeRegistrationStep,
	RepresentationTypePollingStep,
	RepresentationTypeContinueSameStep,
	RepresentationTypeConsentorStep,
	RepresentationTypeUserConsentStep,
	RepresentationTypeOAuthAuthorizationResponse,
	RepresentationTypeIncorrectCredentialsProblem,
	RepresentationTypeInvalidInputProblem,
	RepresentationTypeUnexpectedProblem,
	RepresentationTypeAuthorizationResponseProblem,
)

// KnownRepresentationTypes returns every known representation type, ordered by discriminator.
func KnownRepresentationTypes() []RepresentationType {
	return valuesOf(representationTypes)
}

// ResolveRepresentationType maps a discriminator string to its representation type.
func ResolveRepresentationType(value string) RepresentationType {
	if t, ok := representationTypes[value]; ok {
		return t
	}
	return UnknownRepresentationType(value)
}

// UnknownRepresentationType creates the fallback type carrying an unrecognized discriminator.
func UnknownRepresentationType(value string) RepresentationType {
	return RepresentationType{value: value}
}

// String returns the discriminator string.
func (t RepresentationType) String() string { return t.value }

// IsUnknown reports whether the type is the unknown fallback.
func (t RepresentationType) IsUnknown() bool { return !t.known }

func indexRepresentationTypes(types ...RepresentationType) map[string]RepresentationType {
	m := make(map[string]RepresentationType, len(types))
	for _, t := range types {
		m[t.value] = t
	}
	return m
}

// ActionTemplate is the discriminator of an action.
type ActionTemplate struct {
	value string
	known bool
}

// Known action templates.
var (
	ActionTemplateForm            = ActionTemplate{"form", true}
	ActionTemplateSelector        = ActionTemplate{"selector", true}
	ActionTemplateClientOperation = ActionTemplate{"client-operation", true}
)

var actionTemplates = map[string]ActionTemplate{
	ActionTemplateForm.value:            ActionTemplateForm,
	ActionTemplateSelector.value:        ActionTemplateSelector,
	ActionTemplateClientOperation.value: ActionTemplateClientOperation,
}

// KnownActionTemplates returns every known action template.
func KnownActionTemplates() []ActionTemplate {
	return valuesOf(actionTemplates)
}

// ResolveActionTemplate maps a discriminator string to its action template.
func ResolveActionTemplate(value string) ActionTemplate {
	if t, ok := actionTemplates[value]; ok {
		return t
	}
	return UnknownActionTemplate(value)
}

// UnknownActionTemplate creates the fallback template carrying an unrecognized discriminator.
func UnknownActionTemplate(value string) ActionTemplate {
	return ActionTemplate{value: value}
}

// String returns the discriminator string.
func (t ActionTemplate) String() string { return t.value }

// IsUnknown reports whether the template is the unknown fallback.
func (t ActionTemplate) IsUnknown() bool { return !t.known }

// PollingStatus is the status reported by a polling step.
type PollingStatus struct {
	value string
	known bool
}

// Known polling statuses.
var (
	PollingStatusPending = PollingStatus{"pending", true}
	PollingStatusDone    = PollingStatus{"done", true}
	PollingStatusFailed  = PollingStatus{"failed", true}
)

var pollingStatuses = map[string]PollingStatus{
	PollingStatusPending.value: PollingStatusPending,
	PollingStatusDone.value:    PollingStatusDone,
	PollingStatusFailed.value:  PollingStatusFailed,
}

// KnownPollingStatuses returns every known polling status.
func KnownPollingStatuses() []PollingStatus {
	return valuesOf(pollingStatuses)
}

// ResolvePollingStatus maps a discriminator string to its polling status.
func ResolvePollingStatus(value string) PollingStatus {
	if s, ok := pollingStatuses[value]; ok {
		return s
	}
	return UnknownPollingStatus(value)
}

// UnknownPollingStatus creates the fallback status carrying an unrecognized discriminator.
func UnknownPollingStatus(value string) PollingStatus {
	return PollingStatus{value: value}
}

// String returns the discriminator string.
func (s PollingStatus) String() string { return s.value }

// IsUnknown reports whether the status is the unknown fallback.
func (s PollingStatus) IsUnknown() bool { return !s.known }

// TextKind refines the expected content of a text field.
type TextKind struct {
	value string
	known bool
}

// Known text kinds.
var (
	TextKindNumber = TextKind{"number", true}
	TextKindEmail  = TextKind{"email", true}
	TextKindURL    = TextKind{"url", true}
	TextKindTel    = TextKind{"tel", true}
	TextKindColor  = TextKind{"color", true}
)

var textKinds = map[string]TextKind{
	TextKindNumber.value: TextKindNumber,
	TextKindEmail.value:  TextKindEmail,
	TextKindURL.value:    TextKindURL,
	TextKindTel.value:    TextKindTel,
	TextKindColor.value:  TextKindColor,
}

// KnownTextKinds returns every known text kind.
func KnownTextKinds() []TextKind {
	return valuesOf(textKinds)
}

// ResolveTextKind maps a discriminator string to its text kind.
func ResolveTextKind(value string) TextKind {
	if k, ok := textKinds[value]; ok {
		return k
	}
	return UnknownTextKind(value)
}

// UnknownTextKind creates the fallback kind carrying an unrecognized discriminator.
func UnknownTextKind(value string) TextKind {
	return TextKind{value: value}
}

// String returns the discriminator string.
func (k TextKind) String() string { return k.value }

// IsUnknown reports whether the kind is the unknown fallback.
func (k TextKind) IsUnknown() bool { return !k.known }

// valuesOf returns the values of a discriminator table ordered by their string form.
func valuesOf[T any](m map[string]T) []T {
	values := make([]T, 0, len(m))
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		values = append(values, m[key])
	}
	return values
}
