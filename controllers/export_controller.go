package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/Harman090807/Hotel-management-app/registry"
	"github.com/Harman090807/Hotel-management-app/services"
	"github.com/Harman090807/Hotel-management-app/store"
	"github.com/Harman090807/Hotel-management-app/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportController struct {
	Registry *registry.Registry
	Store    *store.Store
	Exports  *services.ExportService
}

func NewExportController(reg *registry.Registry, st *store.Store, svc *services.ExportService) *ExportController {
	return &ExportController{Registry: reg, Store: st, Exports: svc}
}

// ExportGuests streams the current guests workbook. (GET /api/export/guests)
func (ctrl *ExportController) ExportGuests(c *gin.Context) {
	f, err := ctrl.Exports.GuestsWorkbook(ctrl.Registry.Guests())
	if err != nil {
		log.Printf("❌ export: build guests workbook: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "could not build the guests report")
		return
	}
	streamWorkbook(c, f, "guests")
}

// ExportHistory streams the stay ledger workbook. (GET /api/export/history)
func (ctrl *ExportController) ExportHistory(c *gin.Context) {
	if ctrl.Store == nil {
		utils.JSONError(c, http.StatusNotFound, "stay history is not enabled")
		return
	}

	stays, err := ctrl.Store.Stays(0)
	if err != nil {
		log.Printf("❌ store: load stays: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "could not load stay history")
		return
	}

	f, err := ctrl.Exports.HistoryWorkbook(stays)
	if err != nil {
		log.Printf("❌ export: build history workbook: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "could not build the history report")
		return
	}
	streamWorkbook(c, f, "stay_history")
}

func streamWorkbook(c *gin.Context, f *excelize.File, name string) {
	defer f.Close()

	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("20060102_150405"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		log.Printf("❌ export: stream %s: %v", filename, err)
	}
}
