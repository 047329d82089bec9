package handler

import (
	"fmt"
	"net/http"

	"github.com/lukeramljak/charsibot/internal/blindbox"
	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/internal/logger"
)

// RedeemByRewardRequest opens the blind box bound to a channel point reward
type RedeemByRewardRequest struct {
	UserID      string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Username    string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	RewardTitle string `json:"reward_title" validate:"required,max=100"`
}

// ResetCollectionRequest clears one collection for a user
type ResetCollectionRequest struct {
	UserID         string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	CollectionType string `json:"collection_type" validate:"required,max=50"`
}

// HandleRedeem handles POST /blindbox/redeem
func HandleRedeem(svc blindbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RedemptionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Redeem"); err != nil {
			return
		}

		outcome, err := svc.Redeem(httpContext(r), req)
		if err != nil {
			logger.FromContext(r.Context()).Error(fmt.Sprintf(LogMsgRequestFailed, "Redeem"),
				"user_id", req.UserID, "collection_type", req.CollectionType, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, outcome)
	}
}

// HandleRedeemByRewardTitle handles POST /blindbox/redemption
func HandleRedeemByRewardTitle(svc blindbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RedeemByRewardRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Redemption"); err != nil {
			return
		}

		outcome, err := svc.RedeemByRewardTitle(httpContext(r), req.UserID, req.Username, req.RewardTitle)
		if err != nil {
			logger.FromContext(r.Context()).Error(fmt.Sprintf(LogMsgRequestFailed, "Redemption"),
				"user_id", req.UserID, "reward_title", req.RewardTitle, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, outcome)
	}
}

// HandleShowCollection handles POST /blindbox/display. The overlay is
// notified as a side effect.
func HandleShowCollection(svc blindbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RedemptionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Display collection"); err != nil {
			return
		}

		view, err := svc.ShowCollection(httpContext(r), req)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// HandleResetCollection handles POST /blindbox/reset
func HandleResetCollection(svc blindbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetCollectionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Reset collection"); err != nil {
			return
		}

		if err := svc.ResetCollection(httpContext(r), req.UserID, req.CollectionType); err != nil {
			logger.FromContext(r.Context()).Error(fmt.Sprintf(LogMsgRequestFailed, "Reset collection"),
				"user_id", req.UserID, "collection_type", req.CollectionType, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCollectionReset})
	}
}

// HandleGetCollection handles GET /blindbox/collection
func HandleGetCollection(svc blindbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		collectionType, ok := GetQueryParam(r, w, "collection_type")
		if !ok {
			return
		}
		username := GetOptionalQueryParam(r, "username", "")

		view, err := svc.GetCollection(r.Context(), userID, username, collectionType)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// HandleCompletedCollections handles GET /blindbox/completed
func HandleCompletedCollections(svc blindbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		completed, err := svc.CompletedCollections(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: completed})
	}
}

// HandleListCatalogs handles GET /blindbox/catalogs
func HandleListCatalogs(svc blindbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: svc.Catalogs()})
	}
}
