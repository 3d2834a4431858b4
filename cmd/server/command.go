package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"vynce-backend/internal/app"
	"vynce-backend/internal/command"
	"vynce-backend/internal/httputil"
)

type commandRequest struct {
	Command string         `json:"command" validate:"required,min=1"`
	Params  map[string]any `json:"params"`
}

type commandResponse struct {
	Result      string `json:"result"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
	ExecutionID string `json:"execution_id,omitempty"`
}

func runCommandHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req commandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		if !command.Valid(req.Command) {
			deps.Log.Warn("invalid command", "command", req.Command)
			httputil.WriteJSON(w, http.StatusOK, commandResponse{
				Result:  "Invalid command: " + req.Command,
				Success: false,
				Error:   "Supported commands: " + strings.Join(command.Supported, ", "),
			})
			return
		}

		res, err := command.Execute(req.Command, req.Params)
		if err != nil {
			httputil.WriteJSON(w, http.StatusOK, commandResponse{
				Result:  "Command execution failed",
				Success: false,
				Error:   err.Error(),
			})
			return
		}
		deps.Log.Info("command acknowledged", "command", req.Command, "execution_id", res.ExecutionID)
		httputil.WriteJSON(w, http.StatusOK, commandResponse{
			Result:      res.Message,
			Success:     true,
			ExecutionID: res.ExecutionID,
		})
	}
}

func listCommandsHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"commands": command.Supported,
			"count":    len(command.Supported),
		})
	}
}

func validateCommandHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req commandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		valid := command.Valid(req.Command)
		message := "Command is supported"
		if !valid {
			message = "Command is not supported"
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"command": req.Command,
			"valid":   valid,
			"message": message,
		})
	}
}
