package mux

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"texaspoker-server/internal/config"
	"texaspoker-server/internal/jwt"
	"texaspoker-server/internal/util"
	"texaspoker-server/pkg/account"

	"github.com/badoux/checkmail"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type playerPayload struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Token       string `json:"token"`
}

// playerWithEmail should only be returned in an admin context, or for the requesting player
type playerWithEmail struct {
	*account.Player
	Email string `json:"email"`
}

var validDisplayNameRx = regexp.MustCompile(`^[\p{L}\p{N} ]{0,40}\z`)
var statusOK = map[string]string{
	"status": "OK",
}

func (m *Mux) postPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp playerPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if err := m.recaptcha.Verify(pp.Token); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if !validDisplayNameRx.MatchString(pp.DisplayName) {
			writeJSONError(w, http.StatusBadRequest, errors.New("display name must only contain letters, numbers, and spaces, and be 40 characters or less"))
			return
		}

		if err := checkmail.ValidateFormat(pp.Email); err != nil {
			writeJSONError(w, http.StatusBadRequest, errors.New("missing or invalid email address"))
			return
		}

		if len(pp.Password) < 6 {
			writeJSONError(w, http.StatusBadRequest, errors.New("password must be 6 or more characters"))
			return
		}

		addr := remoteAddr(r)
		at, err := account.LastPlayerCreatedAt(r.Context(), addr)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		if time.Since(at) < m.muxConfig.playerCreateDelay {
			writeJSONError(w, http.StatusBadRequest, errors.New("please wait before creating another player"))
			return
		}

		displayName := pp.DisplayName
		if displayName == "" {
			displayName = util.GetRandomName()
		}

		player, err := account.CreatePlayer(r.Context(), pp.Email, displayName, pp.Password, addr, config.Instance().Player.StartingBalance)
		if err != nil {
			if err == account.ErrDuplicateKey {
				writeJSONError(w, http.StatusBadRequest, errors.New("email address is already taken"))
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, &playerWithEmail{
			Player: player,
			Email:  player.Email,
		})
	}
}

type postPlayerAuthResponse struct {
	JWT    string          `json:"jwt"`
	Player playerWithEmail `json:"player"`
}

func (m *Mux) postPlayerAuth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp playerPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		player, err := account.GetPlayerByEmailAndPassword(r.Context(), pp.Email, pp.Password)
		if err != nil {
			if err == account.ErrInvalidEmailOrPassword {
				writeJSONError(w, http.StatusUnauthorized, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		// once per day, logging in tops up the bankroll
		if bonus := config.Instance().Player.DailyBonus; bonus > 0 {
			granted, err := player.ClaimDailyBonus(r.Context(), bonus)
			if err != nil {
				logrus.WithError(err).WithField("player", player.ID).Error("could not claim daily bonus")
			} else if granted {
				logrus.WithFields(logrus.Fields{
					"player": player.ID,
					"bonus":  bonus,
				}).Info("daily bonus granted")
			}
		}

		signedToken, err := jwt.Sign(player.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, &postPlayerAuthResponse{
			JWT: signedToken,
			Player: playerWithEmail{
				Player: player,
				Email:  player.Email,
			},
		})
	}
}

func (m *Mux) getPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*account.Player)
		writeJSON(w, http.StatusOK, &playerWithEmail{
			Player: player,
			Email:  player.Email,
		})
	}
}

type postPlayerSelfPayload struct {
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

func (m *Mux) postPlayerSelf() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*account.Player)

		var pp postPlayerSelfPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if displayName := pp.DisplayName; displayName != "" {
			if !validDisplayNameRx.MatchString(displayName) {
				writeJSONError(w, http.StatusBadRequest, errors.New("display name must only contain letters, numbers, and spaces"))
				return
			}

			player.DisplayName = displayName
			if err := player.Save(r.Context()); err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}
		}

		if password := pp.Password; password != "" {
			if len(password) < 6 {
				writeJSONError(w, http.StatusBadRequest, errors.New("password must be 6 or more characters"))
				return
			}

			if err := player.SetPassword(password); err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}
		}

		writeJSON(w, http.StatusOK, statusOK)
	}
}

type postAdminPlayerIDPayload struct {
	IsSiteAdmin *bool `json:"isSiteAdmin"`
}

// note: this requires admin auth
func (m *Mux) postAdminPlayerID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := gmux.Vars(r)["id"]

		player, err := account.GetPlayerByID(r.Context(), playerID)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		var pp postAdminPlayerIDPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.IsSiteAdmin != nil {
			if err := player.SetIsSiteAdmin(r.Context(), *pp.IsSiteAdmin); err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}
		}

		writeJSON(w, http.StatusOK, statusOK)
	}
}
