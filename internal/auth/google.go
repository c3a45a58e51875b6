package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2v2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/2beens/traininglog/internal/telemetry/tracing"
)

// Identity is what the identity provider tells us about a logged in person.
type Identity struct {
	ID      string
	Name    string
	Picture string
}

// GoogleProvider runs the OAuth2 authorization code flow against Google.
type GoogleProvider struct {
	config     *oauth2.Config
	httpClient *http.Client
}

func NewGoogleProvider(clientID, clientSecret, callbackURL string) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{oauth2v2.UserinfoProfileScope},
			Endpoint:     google.Endpoint,
		},
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// AuthCodeURL is where the user is sent to log in.
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Identity exchanges the callback code for a token and fetches the user's profile.
func (p *GoogleProvider) Identity(ctx context.Context, code string) (_ *Identity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.google.identity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	service, err := oauth2v2.NewService(ctx, option.WithTokenSource(p.config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("oauth2 service: %w", err)
	}

	info, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get userinfo: %w", err)
	}
	if info.Id == "" {
		return nil, errors.New("userinfo without id")
	}

	return &Identity{
		ID:      info.Id,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
