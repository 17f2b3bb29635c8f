package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/nanokm/pola-backend/internal/apperror"
	"github.com/nanokm/pola-backend/internal/handlers"
	"github.com/nanokm/pola-backend/internal/product"
	"github.com/nanokm/pola-backend/internal/scanner"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockscannerhandler

type Service interface {
	ResolveCode(ctx context.Context, code string) (scanner.ResultCard, scanner.AnalyticsFlags, *product.Product, error)
}

type CodeRequest struct {
	Code string `validate:"required"`
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/get_by_code", apperror.Middleware(h.getByCodeHandler))
}

// @Tags		scanner
// @Param		code	query		string	true	"scanned barcode"
// @Success	200		{object}	scanner.ResultCard
// @Failure	400,500	{object}	apperror.AppError
// @Router		/get_by_code [get]
func (h *handler) getByCodeHandler(w http.ResponseWriter, r *http.Request) error {
	dto := CodeRequest{Code: r.URL.Query().Get("code")}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	result, flags, _, err := h.service.ResolveCode(r.Context(), dto.Code)
	if err != nil {
		return err
	}

	h.logger.Info(
		"code resolved",
		zap.String("code", dto.Code),
		zap.Bool("was_590", flags.Was590),
		zap.Bool("was_plScore", flags.WasPlScore),
		zap.Bool("was_verified", flags.WasVerified),
	)

	render.JSON(w, r, result)

	return nil
}
