package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	credentialapp "github.com/muhammadheryan/femnest/application/credential"
	profileapp "github.com/muhammadheryan/femnest/application/profile"
	questionapp "github.com/muhammadheryan/femnest/application/question"
	"github.com/muhammadheryan/femnest/constant"
	"github.com/muhammadheryan/femnest/model"
	utilsContext "github.com/muhammadheryan/femnest/utils/context"
	"github.com/muhammadheryan/femnest/utils/errors"
	validatorx "github.com/muhammadheryan/femnest/utils/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	CredentialApp credentialapp.CredentialApp
	QuestionApp   questionapp.QuestionApp
	ProfileApp    profileapp.ProfileApp
}

// NewTransport wires the routes. reg receives the HTTP metrics and backs /metrics;
// pass prometheus.NewRegistry() in tests.
func NewTransport(CredentialApp credentialapp.CredentialApp, QuestionApp questionapp.QuestionApp, ProfileApp profileapp.ProfileApp, reg *prometheus.Registry) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		CredentialApp: CredentialApp,
		QuestionApp:   QuestionApp,
		ProfileApp:    ProfileApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	mux.HandleFunc("/healthz", rh.Healthz).Methods(http.MethodGet)

	// Public routes
	mux.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/auth/signup", rh.Signup).Methods(http.MethodPost)
	mux.HandleFunc("/personal-info", rh.SavePersonalInfo).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/questions/generate", rh.GenerateQuestions).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(MetricsMiddleware(NewMetrics(reg)))
	mux.Use(AuthMiddleware(CredentialApp))

	return mux
}

func (s *RestHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// Login handler
// @Summary Login
// @Description Validates the credential form and simulates a login round trip
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.CredentialRequest true "Credential Request"
// @Success 200 {object} model.CredentialResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	s.submitCredential(w, r, constant.AuthModeLogin)
}

// Signup handler
// @Summary Sign up
// @Description Validates the credential form (with confirmation) and simulates account creation
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.CredentialRequest true "Credential Request"
// @Success 200 {object} model.CredentialResponse
// @Failure 422 {object} ErrorResponse
// @Router /auth/signup [post]
func (s *RestHandler) Signup(w http.ResponseWriter, r *http.Request) {
	s.submitCredential(w, r, constant.AuthModeSignup)
}

func (s *RestHandler) submitCredential(w http.ResponseWriter, r *http.Request, mode constant.AuthMode) {
	ctx := r.Context()

	var req model.CredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.CredentialApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	var (
		res *model.CredentialResponse
		err error
	)
	if mode == constant.AuthModeSignup {
		res, err = s.CredentialApp.Signup(ctx, &req)
	} else {
		res, err = s.CredentialApp.Login(ctx, &req)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GenerateQuestions handler
// @Summary Suggest profile questions
// @Description Returns the full list of suggested roommate-profile questions, replacing any previous list
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.QuestionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /questions/generate [post]
func (s *RestHandler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if s.QuestionApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.QuestionApp.Generate(ctx, sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SavePersonalInfo handler
// @Summary Save personal information
// @Description Checks required inputs, then name and contact rules, and simulates saving the roommate profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body model.PersonalInfoRequest true "Personal Info Request"
// @Success 200 {object} model.PersonalInfoResponse
// @Failure 422 {object} ErrorResponse
// @Router /personal-info [post]
func (s *RestHandler) SavePersonalInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.PersonalInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	// input-level constraints; the name and contact rules belong to Save
	if err := validatorx.ValidateStruct(&req); err != nil {
		fields := validatorx.FieldMessages(err)
		if fields == nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		writeError(w, errors.SetMissingFieldError(fields))
		return
	}

	if s.ProfileApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.ProfileApp.Save(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
