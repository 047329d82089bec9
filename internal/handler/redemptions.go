package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lukeramljak/charsibot/internal/logger"
	"github.com/lukeramljak/charsibot/internal/twitch"
)

// RedemptionProcessor applies channel point rewards of any kind
type RedemptionProcessor interface {
	HandleRedemption(ctx context.Context, red twitch.Redemption) error
}

// HandleChannelRedemption handles POST /redemptions. An EventSub relay posts
// every reward here; rewards without a handler are accepted and ignored.
func HandleChannelRedemption(p RedemptionProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req twitch.Redemption
		if err := DecodeAndValidateRequest(r, w, &req, "Channel redemption"); err != nil {
			return
		}

		if err := p.HandleRedemption(r.Context(), req); err != nil {
			logger.FromContext(r.Context()).Error(fmt.Sprintf(LogMsgRequestFailed, "Channel redemption"),
				"user_id", req.UserID, "reward_title", req.RewardTitle, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgRedemptionAccepted})
	}
}
