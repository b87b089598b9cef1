package controller

import (
	"video-search-be/internal/dto"
	"video-search-be/internal/pkg/serverutils"
	"video-search-be/internal/service"
	"video-search-be/pkg/playback"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPlaybackController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	AddSlot(ctx *fiber.Ctx) error
	RemoveSlot(ctx *fiber.Ctx) error
	Next(ctx *fiber.Ctx) error
	Previous(ctx *fiber.Ctx) error
	ToggleAutoAdvance(ctx *fiber.Ctx) error
	SetInterval(ctx *fiber.Ctx) error
	EnterFullscreen(ctx *fiber.Ctx) error
	ExitFullscreen(ctx *fiber.Ctx) error
	SyncFullscreen(ctx *fiber.Ctx) error
	ToggleBookmark(ctx *fiber.Ctx) error
}

type playbackController struct {
	service service.IPlaybackService
}

func NewPlaybackController(service service.IPlaybackService) IPlaybackController {
	return &playbackController{service: service}
}

func (c *playbackController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/playback/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":sessionId", c.State)
	h.Post(":sessionId/slots/:position", c.AddSlot)
	h.Delete(":sessionId/slots/:position", c.RemoveSlot)
	h.Post(":sessionId/slots/:position/next", c.Next)
	h.Post(":sessionId/slots/:position/previous", c.Previous)
	h.Put(":sessionId/auto-advance", c.ToggleAutoAdvance)
	h.Put(":sessionId/auto-advance/interval", c.SetInterval)
	h.Post(":sessionId/fullscreen/enter", c.EnterFullscreen)
	h.Post(":sessionId/fullscreen/exit", c.ExitFullscreen)
	h.Put(":sessionId/fullscreen", c.SyncFullscreen)
	h.Post(":sessionId/bookmarks", c.ToggleBookmark)
}

func sessionParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return uuid.Nil, serverutils.NewAppError(fiber.StatusBadRequest, "Invalid session id", err)
	}
	return id, nil
}

func positionParam(ctx *fiber.Ctx) (playback.Position, error) {
	pos, err := playback.ParsePosition(ctx.Params("position"))
	if err != nil {
		return 0, serverutils.NewAppError(fiber.StatusBadRequest, "Invalid slot position", err)
	}
	return pos, nil
}

func (c *playbackController) State(ctx *fiber.Ctx) error {
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.State(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get playback state", res))
}

func (c *playbackController) AddSlot(ctx *fiber.Ctx) error {
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}
	pos, err := positionParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.AddSlot(ctx.Context(), id, pos)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add slot", res))
}

func (c *playbackController) RemoveSlot(ctx *fiber.Ctx) error {
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}
	pos, err := positionParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.RemoveSlot(ctx.Context(), id, pos)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success remove slot", res))
}

func (c *playbackController) Next(ctx *fiber.Ctx) error {
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}
	pos, err := positionParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Next(ctx.Context(), id, pos)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success advance slot", res))
}

func (c *playbackController) Previous(ctx *fiber.Ctx) error {
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}
	pos, err := positionParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Previous(ctx.Context(), id, pos)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success rewind slot", res))
}

func (c *playbackController) ToggleAutoAdvance(ctx *fiber.Ctx) error {
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	var req dto.ToggleAutoAdvanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.ToggleAutoAdvance(ctx.Context(), id, req.Enabled)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle auto advance", res))
}

func (c *playbackController) SetInterval(ctx *fiber.Ctx) error {
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	var req dto.IntervalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetInterval(ctx.Context(), id, req.IntervalSeconds)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set interval", res))
}

func (c *playbackController) EnterFullscreen(ctx *fiber.Ctx) error {
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.EnterFullscreen(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success enter fullscreen", res))
}

func (c *playbackController) ExitFullscreen(ctx *fiber.Ctx) error {
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ExitFullscreen(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success exit fullscreen", res))
}

func (c *playbackController) SyncFullscreen(ctx *fiber.Ctx) error {
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	var req dto.FullscreenSyncRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.SyncFullscreen(ctx.Context(), id, req.Active)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success sync fullscreen", res))
}

func (c *playbackController) ToggleBookmark(ctx *fiber.Ctx) error {
	id, err := sessionParam(ctx)
	if err != nil {
		return err
	}

	var req dto.BookmarkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	bookmarked, err := c.service.ToggleBookmark(ctx.Context(), id, req.VideoId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle bookmark", fiber.Map{
		"video_id":   req.VideoId,
		"bookmarked": bookmarked,
	}))
}
