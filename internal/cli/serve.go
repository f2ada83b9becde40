package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	apperrors "github.com/Wal33D/nhtsa-recall-lookup/pkg/errors"
	"github.com/Wal33D/nhtsa-recall-lookup/pkg/recall"
)

// serveCommand creates the HTTP API server command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve recall lookups over HTTP",
		Long: `Serve exposes the recall lookups as a small JSON API:

  GET /healthz                                      liveness check
  GET /v1/recalls?make=&model=&modelYear=           recalls for a vehicle
  GET /v1/campaigns/{number}                        one recall by campaign number`,
		Example: `  recalls serve
  recalls serve --addr :9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, cleanup := c.newRecallClient(ctx)
			defer cleanup()

			server := &http.Server{
				Addr:              addr,
				Handler:           newRouter(client, c.Logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr)
				errCh <- server.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

// apiError is the JSON error body returned by the API.
type apiError struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

// newRouter builds the HTTP handler for the recall API.
func newRouter(client *recall.Client, logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/v1/recalls", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		vehicleMake := q.Get("make")
		vehicleModel := q.Get("model")
		if vehicleMake == "" || vehicleModel == "" {
			respondJSON(w, http.StatusBadRequest, apiError{
				Code:    apperrors.ErrCodeInvalidInput,
				Message: "make and model query parameters are required",
			})
			return
		}

		records := client.FetchVehicleRecalls(req.Context(), vehicleMake, vehicleModel, q.Get("modelYear"))
		respondJSON(w, http.StatusOK, map[string]any{
			"count":   len(records),
			"results": records,
		})
	})

	r.Get("/v1/campaigns/{number}", func(w http.ResponseWriter, req *http.Request) {
		number := chi.URLParam(req, "number")
		record := client.FetchCampaign(req.Context(), number)
		if record == nil {
			respondJSON(w, http.StatusNotFound, apiError{
				Code:    apperrors.ErrCodeCampaignNotFound,
				Message: "no recall found for campaign " + number,
			})
			return
		}
		respondJSON(w, http.StatusOK, record)
	})

	return r
}

// requestLogger assigns a request ID and logs each request on completion.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			requestID := uuid.NewString()
			w.Header().Set("X-Request-ID", requestID)

			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, req)

			logger.Info("request",
				"id", requestID,
				"method", req.Method,
				"path", req.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
