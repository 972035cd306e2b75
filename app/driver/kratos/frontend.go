package kratos

import (
	"context"
	"fmt"
	"log/slog"

	kratosclient "github.com/ory/kratos-client-go"

	"session-service/app/domain"
	"session-service/app/port"
)

// Frontend implements port.KratosFrontend over the native (API-flow) Kratos
// endpoints. Browser flows, CSRF cookies, and the admin API are out of scope;
// the session token travels in the X-Session-Token header.
type Frontend struct {
	client *Client
	logger *slog.Logger
}

// NewFrontend creates a new Frontend adapter
func NewFrontend(client *Client, logger *slog.Logger) port.KratosFrontend {
	return &Frontend{
		client: client,
		logger: logger.With("component", "kratos_frontend"),
	}
}

// WhoAmI resolves a session token to the session it identifies
func (f *Frontend) WhoAmI(ctx context.Context, sessionToken string) (*domain.ProviderSession, error) {
	resp, httpResp, err := f.client.API().FrontendAPI.
		ToSession(ctx).
		XSessionToken(sessionToken).
		Execute()
	if err != nil {
		return nil, f.mapError(err, httpResp, "whoami")
	}

	session, err := sessionToDomain(resp, sessionToken)
	if err != nil {
		return nil, err
	}
	if !session.IsLive() {
		return nil, domain.ErrSessionExpired
	}
	return session, nil
}

// LoginWithPassword runs a native login flow end to end: create the flow,
// submit the password method, return the issued session
func (f *Frontend) LoginWithPassword(ctx context.Context, email, password string) (*domain.ProviderSession, error) {
	flow, httpResp, err := f.client.API().FrontendAPI.
		CreateNativeLoginFlow(ctx).
		Execute()
	if err != nil {
		return nil, f.mapError(err, httpResp, "login_flow_create")
	}

	body := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Identifier: email,
		Password:   password,
		Method:     "password",
	}
	success, httpResp, err := f.client.API().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&body)).
		Execute()
	if err != nil {
		return nil, f.mapError(err, httpResp, "login_flow_submit")
	}

	token := success.GetSessionToken()
	if token == "" {
		return nil, fmt.Errorf("kratos login succeeded but returned no session token")
	}

	kratosSession := success.GetSession()
	session, err := sessionToDomain(&kratosSession, token)
	if err != nil {
		return nil, err
	}

	f.logger.Info("login flow completed", "flow_id", flow.Id, "user_id", session.Identity.ID)
	return session, nil
}

// RegisterWithPassword runs a native registration flow. The email becomes the
// identity's email trait; extra metadata entries become additional traits.
// Relies on the after-registration session hook; if Kratos did not issue a
// session inline, the fresh credentials are exchanged via a login flow.
func (f *Frontend) RegisterWithPassword(ctx context.Context, email, password string, metadata map[string]interface{}) (*domain.ProviderSession, error) {
	flow, httpResp, err := f.client.API().FrontendAPI.
		CreateNativeRegistrationFlow(ctx).
		Execute()
	if err != nil {
		return nil, f.mapError(err, httpResp, "registration_flow_create")
	}

	traits := map[string]interface{}{"email": email}
	for key, value := range metadata {
		traits[key] = value
	}

	body := kratosclient.UpdateRegistrationFlowWithPasswordMethod{
		Method:   "password",
		Password: password,
		Traits:   traits,
	}
	success, httpResp, err := f.client.API().FrontendAPI.
		UpdateRegistrationFlow(ctx).
		Flow(flow.Id).
		UpdateRegistrationFlowBody(kratosclient.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(&body)).
		Execute()
	if err != nil {
		return nil, f.mapError(err, httpResp, "registration_flow_submit")
	}

	token := success.GetSessionToken()
	kratosSession := success.GetSession()
	if token == "" || kratosSession.Id == "" {
		f.logger.Info("registration issued no inline session, logging in", "flow_id", flow.Id)
		return f.LoginWithPassword(ctx, email, password)
	}

	session, err := sessionToDomain(&kratosSession, token)
	if err != nil {
		return nil, err
	}

	f.logger.Info("registration flow completed", "flow_id", flow.Id, "user_id", session.Identity.ID)
	return session, nil
}

// Logout revokes the session behind the token
func (f *Frontend) Logout(ctx context.Context, sessionToken string) error {
	httpResp, err := f.client.API().FrontendAPI.
		PerformNativeLogout(ctx).
		PerformNativeLogoutBody(*kratosclient.NewPerformNativeLogoutBody(sessionToken)).
		Execute()
	if err != nil {
		return f.mapError(err, httpResp, "logout")
	}
	return nil
}

// UpdateTraits merges the given metadata into the identity's traits through a
// settings flow. Kratos replaces traits wholesale, so the current traits are
// read from the flow first.
func (f *Frontend) UpdateTraits(ctx context.Context, sessionToken string, metadata map[string]interface{}) error {
	flow, httpResp, err := f.client.API().FrontendAPI.
		CreateNativeSettingsFlow(ctx).
		XSessionToken(sessionToken).
		Execute()
	if err != nil {
		return f.mapError(err, httpResp, "settings_flow_create")
	}

	traits := make(map[string]interface{})
	if current, ok := flow.Identity.GetTraits().(map[string]interface{}); ok {
		for key, value := range current {
			traits[key] = value
		}
	}
	for key, value := range metadata {
		traits[key] = value
	}

	body := kratosclient.UpdateSettingsFlowWithProfileMethod{
		Method: "profile",
		Traits: traits,
	}
	_, httpResp, err = f.client.API().FrontendAPI.
		UpdateSettingsFlow(ctx).
		Flow(flow.Id).
		XSessionToken(sessionToken).
		UpdateSettingsFlowBody(kratosclient.UpdateSettingsFlowWithProfileMethodAsUpdateSettingsFlowBody(&body)).
		Execute()
	if err != nil {
		return f.mapError(err, httpResp, "settings_flow_submit")
	}

	f.logger.Info("identity traits updated", "flow_id", flow.Id)
	return nil
}
