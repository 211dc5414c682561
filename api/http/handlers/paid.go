package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/thedenisnikulin/nocsdegree.ru/api/http/presenter"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/paid"
)

type PaidHandler struct {
	uc  paid.UseCase
	log *slog.Logger
}

func NewPaidHandler(uc paid.UseCase, log *slog.Logger) *PaidHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PaidHandler{uc: uc, log: log}
}

type createPaidRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Employer     string `json:"employer" validate:"max=200"`
	EmployerLogo string `json:"employer_logo" validate:"max=500"`
	City         string `json:"city" validate:"max=100"`
	Tags         string `json:"tags" validate:"max=1000"`
	URL          string `json:"url" validate:"required,url,max=500"`
	Date         string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Color        string `json:"color" validate:"omitempty,hexcolor"`
}

// Featured отдаёт оплаченные вакансии в формате фронтенда.
// @Summary Оплаченные вакансии
// @Tags    paid
// @Produce json
// @Success 200 {array} jobs.Job
// @Router  /paid-jobs [get]
func (h *PaidHandler) Featured(c *fiber.Ctx) error {
	out, err := h.uc.Featured(c.Context())
	if err != nil {
		h.log.Error("list featured", "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "не удалось получить список")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// @Summary Список оплаченных вакансий
// @Tags    admin
// @Produce json
// @Param   limit  query int false "limit (default 50, max 200)"
// @Param   offset query int false "offset"
// @Security BearerAuth
// @Success 200 {array} paid.Vacancy
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /api/v1/admin/paid-vacancies [get]
func (h *PaidHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	vs, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		h.log.Error("list paid vacancies", "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "не удалось получить список")
	}
	return presenter.JSON(c, http.StatusOK, vs)
}

// @Summary Создать оплаченную вакансию
// @Tags    admin
// @Accept  json
// @Produce json
// @Param   input body createPaidRequest true "Данные вакансии"
// @Security BearerAuth
// @Success 201 {object} paid.Vacancy
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /api/v1/admin/paid-vacancies [post]
func (h *PaidHandler) Create(c *fiber.Ctx) error {
	var req createPaidRequest
	if !bindJSON(c, &req) {
		return nil
	}
	v, err := h.uc.Create(c.Context(), paid.Vacancy{
		Name:         req.Name,
		Employer:     req.Employer,
		EmployerLogo: req.EmployerLogo,
		City:         req.City,
		Tags:         req.Tags,
		URL:          req.URL,
		Date:         req.Date,
		Color:        req.Color,
	})
	if err != nil {
		var verr paid.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		h.log.Error("create paid vacancy", "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "не удалось сохранить вакансию")
	}
	return presenter.JSON(c, http.StatusCreated, v)
}

// @Summary Получить оплаченную вакансию
// @Tags    admin
// @Produce json
// @Param   id path string true "ID вакансии (UUID)"
// @Security BearerAuth
// @Success 200 {object} paid.Vacancy
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /api/v1/admin/paid-vacancies/{id} [get]
func (h *PaidHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	v, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return h.storeError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, v)
}

// @Summary Удалить оплаченную вакансию
// @Tags    admin
// @Param   id path string true "ID вакансии (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /api/v1/admin/paid-vacancies/{id} [delete]
func (h *PaidHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return h.storeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *PaidHandler) storeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, paid.ErrNotFound) {
		return presenter.Error(c, http.StatusNotFound, "вакансия не найдена")
	}
	h.log.Error("paid vacancy store", "err", err)
	return presenter.Error(c, http.StatusInternalServerError, "internal error")
}
