package http

import (
	nethttp "net/http"
	"time"

	"github.com/labstack/echo/v4"

	"urbanmart/internal/core/application/usecases/commands"
	"urbanmart/internal/core/application/usecases/queries"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/user"
)

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// Register handles POST /api/auth/register.
//
//	@Summary	Register a new user
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body	registerRequest	true	"registration data"
//	@Success	201		{object}	envelope
//	@Router		/api/auth/register [post]
func (s *Server) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(nethttp.StatusBadRequest,
			envelope{Success: false, Error: "invalid request body"})
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return respondError(c, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, req.Email, req.Name, req.Password, role)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.RegisterUser.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	token, err := s.auth.IssueToken(userID, role, time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, nethttp.StatusCreated, authResponse{
		Token: token,
		User: map[string]string{
			"id":    userID.String(),
			"email": req.Email,
			"name":  req.Name,
			"role":  role.String(),
		},
	})
}

// Login handles POST /api/auth/login.
//
//	@Summary	Authenticate and receive a token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body	loginRequest	true	"credentials"
//	@Success	200		{object}	envelope
//	@Router		/api/auth/login [post]
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(nethttp.StatusBadRequest,
			envelope{Success: false, Error: "invalid request body"})
	}

	query, err := queries.NewLoginQuery(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	account, err := s.handlers.Login.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	userID, err := kernel.UUIDFromString(account.ID)
	if err != nil {
		return respondError(c, err)
	}
	role, err := user.ParseRole(account.Role)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.auth.IssueToken(userID, role, time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, nethttp.StatusOK, authResponse{Token: token, User: account})
}
