package controllers

import (
	"net/http"

	"github.com/bitebasket/bitebasket/pkg/auth"
	"github.com/bitebasket/bitebasket/pkg/bind"
	"github.com/bitebasket/bitebasket/pkg/logger"
	"github.com/bitebasket/bitebasket/pkg/response"
)

// AuthController issues bearer tokens. Tokens are granted against the
// submitted email alone; the frontend authenticates the user before
// asking for a token, so this endpoint only does presence checking.
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

type tokenInput struct {
	Email string `json:"email" validate:"required"`
}

// IssueToken handles POST /jwt.
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var body tokenInput
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := auth.GenerateToken(body.Email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("token generation failed", "error", err)
		response.FromError(w, err)
		return
	}

	response.Success(w, map[string]string{"token": token})
}
