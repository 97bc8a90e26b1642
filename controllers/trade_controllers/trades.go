package trade_controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zsmartex/mocktrade/controllers/helpers"
	"github.com/zsmartex/mocktrade/controllers/queries"
	"github.com/zsmartex/mocktrade/services/trade_service"
)

const scope = "trade"

type TradeController struct {
	Service *trade_service.TradeService
}

func NewTradeController(service *trade_service.TradeService) *TradeController {
	return &TradeController{Service: service}
}

func (ctl *TradeController) CreateTrade(c *fiber.Ctx) error {
	errors := new(helpers.Errors)
	payload := new(helpers.CreateTradeParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{helpers.ServerInvalidMessageBody},
		})
	}

	payload.Normalize()
	helpers.Vaildate(payload, errors)
	payload.Check(errors)

	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	trade, err := ctl.Service.CreateTrade(c.UserContext(), payload.ToInput())
	if err != nil {
		return helpers.RespondError(c, scope, err)
	}

	return c.Status(201).JSON(trade)
}

func (ctl *TradeController) GetTrades(c *fiber.Ctx) error {
	params := new(queries.TradeFilters)

	if err := c.QueryParser(params); err != nil {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{helpers.ServerInvalidMessageQuery},
		})
	}

	trades, err := ctl.Service.ListTrades(c.UserContext(), params.ToFilter())
	if err != nil {
		return helpers.RespondError(c, scope, err)
	}

	return c.Status(200).JSON(trades)
}

// AmendTrade takes an arbitrary JSON object; only allow-listed keys are
// applied. An empty body amends nothing and echoes the current status.
func (ctl *TradeController) AmendTrade(c *fiber.Ctx) error {
	patch := trade_service.Patch{}

	if len(c.Body()) > 0 {
		if err := c.BodyParser(&patch); err != nil {
			return c.Status(400).JSON(helpers.Errors{
				Errors: []string{helpers.ServerInvalidMessageBody},
			})
		}
	}

	result, err := ctl.Service.AmendTrade(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return helpers.RespondError(c, scope, err)
	}

	return c.Status(200).JSON(result)
}

func (ctl *TradeController) CancelTrade(c *fiber.Ctx) error {
	result, err := ctl.Service.CancelTrade(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.RespondError(c, scope, err)
	}

	return c.Status(200).JSON(result)
}
