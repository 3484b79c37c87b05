package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/jrsteele09/go-budget-client/auth"
	"github.com/jrsteele09/go-budget-client/budget"
	"github.com/jrsteele09/go-budget-client/gateway"
	"github.com/jrsteele09/go-budget-client/internal/config"
	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
	"github.com/jrsteele09/go-budget-client/internal/utils"
	"github.com/jrsteele09/go-budget-client/session"
	"github.com/rs/zerolog/log"
)

// Init loads the configuration and builds the session store, gateway, API
// client and account service. Session termination notices go to errOut.
func (f *Flags) Init(errOut io.Writer) error {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	f.Config = cfg

	store, err := session.NewStore(cfg)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	f.Store = store

	baseURL := utils.FirstNonEmpty(f.APIURL, cfg.GetAPIBaseURL())
	gw, err := gateway.New(baseURL, store,
		gateway.WithHTTPClient(&http.Client{Timeout: cfg.GetHTTPTimeout()}),
		gateway.WithLoginPath(cfg.GetLoginPath()),
		gateway.WithRefreshPath(cfg.GetRefreshPath()),
		gateway.WithUserAgent(cfg.GetUserAgent()),
		gateway.WithOnSessionTerminated(sessionExpiredNotice(errOut)),
	)
	if err != nil {
		return err
	}

	f.Client, err = budget.New(gw)
	if err != nil {
		return err
	}
	f.Auth, err = auth.NewService(f.Client, store)
	if err != nil {
		return err
	}

	log.Debug().
		Str("api_url", baseURL).
		Str("session_store", cfg.GetSessionStore()).
		Str("env", cfg.GetEnv()).
		Msg("Client configured")
	return nil
}

// sessionExpiredNotice is the command-line form of sending the user back to
// the login screen. Requests that carried no session, such as a rejected
// login, get no notice.
func sessionExpiredNotice(w io.Writer) gateway.SessionTerminated {
	return func(ctx context.Context, loginPath string, reason error) {
		log.Debug().Err(reason).Str("login_path", loginPath).Msg("Session terminated")
		if apperrors.Is(reason, apperrors.ErrNotAuthenticated) {
			return
		}
		_, _ = fmt.Fprintln(w, "session expired, run `budgetctl login`")
	}
}
