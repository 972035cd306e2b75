package kratos

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	kratosclient "github.com/ory/kratos-client-go"

	"session-service/app/domain"
)

// mapError translates Kratos API failures into domain errors. Kratos reports
// flow-level problems inside the response body rather than through status
// codes alone, so the body is inspected for known message patterns first.
func (f *Frontend) mapError(err error, httpResp *http.Response, operation string) error {
	status := getHTTPStatus(httpResp)
	f.logger.Debug("mapping kratos error",
		"operation", operation,
		"error", err,
		"http_status", status)

	if kratosErr, ok := err.(*kratosclient.GenericOpenAPIError); ok {
		if mapped := classifyBody(kratosErr.Body(), operation); mapped != nil {
			return mapped
		}
	}

	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		switch operation {
		case "whoami", "logout", "settings_flow_create", "settings_flow_submit":
			return domain.ErrSessionNotFound
		default:
			return domain.ErrInvalidCredentials
		}
	case http.StatusNotFound, http.StatusGone:
		return fmt.Errorf("%w: kratos %s flow expired", domain.ErrInvalidInput, operation)
	case http.StatusConflict:
		return domain.ErrIdentityExists
	case 0, http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: kratos %s failed: %v", domain.ErrProviderUnavailable, operation, err)
	default:
		return fmt.Errorf("%w: kratos %s returned status %d", domain.ErrInternal, operation, status)
	}
}

// classifyBody scans the error payload, including flow UI messages, for
// patterns that identify the real failure. Returns nil when nothing matched.
func classifyBody(body []byte, operation string) error {
	if len(body) == 0 {
		return nil
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return classifyMessage(string(body))
	}

	for _, text := range collectMessages(payload) {
		if mapped := classifyMessage(text); mapped != nil {
			return mapped
		}
	}
	return nil
}

// collectMessages gathers every human-readable message from a Kratos error
// payload: top-level message/reason fields plus flow UI messages and
// node-level messages
func collectMessages(payload map[string]interface{}) []string {
	var texts []string

	if message, ok := payload["message"].(string); ok {
		texts = append(texts, message)
	}
	if reason, ok := payload["reason"].(string); ok {
		texts = append(texts, reason)
	}
	if errorObj, ok := payload["error"].(map[string]interface{}); ok {
		if message, ok := errorObj["message"].(string); ok {
			texts = append(texts, message)
		}
		if reason, ok := errorObj["reason"].(string); ok {
			texts = append(texts, reason)
		}
	}

	ui, ok := payload["ui"].(map[string]interface{})
	if !ok {
		return texts
	}
	texts = append(texts, messageTexts(ui["messages"])...)
	if nodes, ok := ui["nodes"].([]interface{}); ok {
		for _, node := range nodes {
			if nodeMap, ok := node.(map[string]interface{}); ok {
				texts = append(texts, messageTexts(nodeMap["messages"])...)
			}
		}
	}
	return texts
}

func messageTexts(messages interface{}) []string {
	list, ok := messages.([]interface{})
	if !ok {
		return nil
	}
	var texts []string
	for _, msg := range list {
		if msgMap, ok := msg.(map[string]interface{}); ok {
			if text, ok := msgMap["text"].(string); ok {
				texts = append(texts, text)
			}
		}
	}
	return texts
}

// classifyMessage maps a single Kratos message onto a domain error
func classifyMessage(message string) error {
	messageLower := strings.ToLower(message)

	if containsAny(messageLower, []string{
		"credentials are invalid", "invalid credentials", "wrong password",
		"authentication failed", "login failed",
	}) {
		return domain.ErrInvalidCredentials
	}

	if containsAny(messageLower, []string{
		"already exists", "already registered", "exists already", "duplicate",
	}) {
		return domain.ErrIdentityExists
	}

	if containsAny(messageLower, []string{
		"session not found", "invalid session", "no active session", "session inactive",
	}) {
		return domain.ErrSessionNotFound
	}

	if containsAny(messageLower, []string{"session expired", "session has expired"}) {
		return domain.ErrSessionExpired
	}

	if containsAny(messageLower, []string{
		"is missing", "is required", "does not match", "is not valid",
		"length must be", "validation failed",
	}) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, message)
	}

	if containsAny(messageLower, []string{
		"connection refused", "timeout", "service unavailable",
	}) {
		return domain.ErrProviderUnavailable
	}

	return nil
}

// containsAny checks if the text contains any of the given substrings
func containsAny(text string, substrings []string) bool {
	for _, substring := range substrings {
		if strings.Contains(text, substring) {
			return true
		}
	}
	return false
}

// getHTTPStatus returns HTTP status from response for logging
func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
