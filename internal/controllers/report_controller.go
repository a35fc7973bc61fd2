package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type ReportController struct {
	requestService *services.RequestService
	logger         *zap.Logger
}

func NewReportController(requestService *services.RequestService, logger *zap.Logger) *ReportController {
	return &ReportController{requestService: requestService, logger: logger}
}

// GetReport выгружает заявки. ?format=xlsx отдаёт файл, иначе JSON.
func (c *ReportController) GetReport(ctx echo.Context) error {
	filter := dto.RequestFilter{
		Stage: ctx.QueryParam("stage"),
		Type:  ctx.QueryParam("type"),
	}
	format := strings.ToLower(ctx.QueryParam("format"))
	c.logger.Debug("Запрос на отчет по заявкам", zap.Any("filter", filter), zap.String("format", format))

	data, err := c.requestService.GetRequests(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}
	return ctx.JSON(http.StatusOK, data)
}

var reportHeaders = []string{
	"ID", "Subject", "Equipment", "Serial Number", "Team", "Type", "Stage",
	"Priority", "Scheduled Date", "Assigned To", "Duration (hours)", "Created At",
}

func reportRow(item dto.RequestDTO) []interface{} {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}

	return []interface{}{
		item.ID, item.Subject, deref(item.EquipmentName), deref(item.EquipmentSerial),
		deref(item.TeamName), item.Type, item.Stage, item.Priority,
		deref(item.ScheduledDate), item.AssignedTo.String,
		fmt.Sprintf("%.2f", item.Duration), item.CreatedAt,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []dto.RequestDTO) error {
	f := excelize.NewFile()
	sheet := "Maintenance Requests"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "L1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := reportRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "E", 25)
	f.SetColWidth(sheet, "I", "L", 18)

	fileName := fmt.Sprintf("requests_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
