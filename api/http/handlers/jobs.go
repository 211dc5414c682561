package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/thedenisnikulin/nocsdegree.ru/api/http/presenter"
	"github.com/thedenisnikulin/nocsdegree.ru/api/http/web"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/jobs"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/paid"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/query"
)

// Feed supplies the landing page job list.
type Feed interface {
	Latest(ctx context.Context) (jobs.Result, error)
}

type JobsHandler struct {
	uc   jobs.UseCase
	feed Feed
	paid paid.UseCase
	log  *slog.Logger
}

func NewJobsHandler(uc jobs.UseCase, feed Feed, paidUC paid.UseCase, log *slog.Logger) *JobsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &JobsHandler{uc: uc, feed: feed, paid: paidUC, log: log}
}

type tagsDTO struct {
	Type []string `json:"type" validate:"max=50,dive,max=200"`
	Tech []string `json:"tech" validate:"max=50,dive,max=200"`
	City string   `json:"city" validate:"max=100"`
}

type loadJobsRequest struct {
	Tags *tagsDTO `json:"tags" validate:"required"`
	Page *int     `json:"page" validate:"required,gte=0"`
}

// Index renders the landing page. Upstream trouble degrades to an empty list instead of an error page.
// @Summary Главная страница
// @Tags    jobs
// @Produce html
// @Success 200 {string} string "HTML"
// @Router  / [get]
func (h *JobsHandler) Index(c *fiber.Ctx) error {
	page := web.Page{}
	if res, err := h.feed.Latest(c.Context()); err != nil {
		h.log.Warn("landing feed unavailable", "err", err)
	} else {
		page.Jobs, page.Pages = res.Jobs, res.Pages
	}
	if featured, err := h.paid.Featured(c.Context()); err != nil {
		h.log.Warn("paid vacancies unavailable", "err", err)
	} else {
		page.PaidJobs = featured
	}

	var buf bytes.Buffer
	if err := web.Render(&buf, page); err != nil {
		h.log.Error("render index", "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// LoadJobs runs the search pipeline for a tag selection.
// @Summary Поиск вакансий без требования высшего образования
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body loadJobsRequest true "Выбранные теги и номер страницы"
// @Success 200 {object} jobs.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /load-jobs [post]
func (h *JobsHandler) LoadJobs(c *fiber.Ctx) error {
	var req loadJobsRequest
	if !bindJSON(c, &req) {
		return nil
	}
	sel := query.Selection{Type: req.Tags.Type, Tech: req.Tags.Tech, City: req.Tags.City}
	res, err := h.uc.Load(c.Context(), sel, *req.Page)
	if err != nil {
		return upstreamError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Get presents one hh.ru vacancy.
// @Summary Вакансия hh.ru по ID
// @Tags    jobs
// @Produce json
// @Param   id path string true "ID вакансии на hh.ru"
// @Success 200 {object} jobs.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := validate.Var(id, "required,numeric,max=20"); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid vacancy id")
	}
	job, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return upstreamError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, job)
}
