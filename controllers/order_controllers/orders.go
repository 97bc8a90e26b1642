package order_controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zsmartex/mocktrade/controllers/helpers"
	"github.com/zsmartex/mocktrade/controllers/queries"
	"github.com/zsmartex/mocktrade/services/order_service"
)

const scope = "order"

type OrderController struct {
	Service *order_service.OrderService
}

func NewOrderController(service *order_service.OrderService) *OrderController {
	return &OrderController{Service: service}
}

func (ctl *OrderController) CreateOrder(c *fiber.Ctx) error {
	errors := new(helpers.Errors)
	payload := new(helpers.CreateOrderParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{helpers.ServerInvalidMessageBody},
		})
	}

	helpers.Vaildate(payload, errors)
	payload.Check(errors)

	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	order, err := ctl.Service.CreateOrder(c.UserContext(), payload.ToInput())
	if err != nil {
		return helpers.RespondError(c, scope, err)
	}

	return c.Status(201).JSON(order)
}

func (ctl *OrderController) GetOrders(c *fiber.Ctx) error {
	errors := new(helpers.Errors)
	params := new(queries.OrderFilters)

	if err := c.QueryParser(params); err != nil {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{helpers.ServerInvalidMessageQuery},
		})
	}

	helpers.Vaildate(params, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	orders, err := ctl.Service.ListOrders(c.UserContext(), params.ToFilter())
	if err != nil {
		return helpers.RespondError(c, scope, err)
	}

	return c.Status(200).JSON(orders)
}

// UpdateOrderStatus reads status from the JSON body or, failing that, the
// query string.
func (ctl *OrderController) UpdateOrderStatus(c *fiber.Ctx) error {
	errors := new(helpers.Errors)
	params := new(helpers.UpdateStatusParams)

	if err := c.QueryParser(params); err != nil {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{helpers.ServerInvalidMessageQuery},
		})
	}

	if len(c.Body()) > 0 {
		if err := c.BodyParser(params); err != nil {
			return c.Status(400).JSON(helpers.Errors{
				Errors: []string{helpers.ServerInvalidMessageBody},
			})
		}
	}

	helpers.Vaildate(params, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	result, err := ctl.Service.UpdateOrderStatus(c.UserContext(), c.Params("id"), params.Status)
	if err != nil {
		return helpers.RespondError(c, scope, err)
	}

	return c.Status(200).JSON(result)
}

func (ctl *OrderController) SimulateFill(c *fiber.Ctx) error {
	result, err := ctl.Service.SimulateFill(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.RespondError(c, scope, err)
	}

	return c.Status(200).JSON(result)
}

func (ctl *OrderController) CancelOrder(c *fiber.Ctx) error {
	result, err := ctl.Service.CancelOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.RespondError(c, scope, err)
	}

	return c.Status(200).JSON(result)
}

func (ctl *OrderController) DropCopy(c *fiber.Ctx) error {
	result, err := ctl.Service.DropCopy(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.RespondError(c, scope, err)
	}

	return c.Status(200).JSON(result)
}
