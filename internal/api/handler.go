// Package api exposes the converter over HTTP for the hosted front end.
package api

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/SidInNJ/statements2csv/internal/extractor"
	"github.com/SidInNJ/statements2csv/internal/models"
	"github.com/SidInNJ/statements2csv/internal/parser"
	"github.com/SidInNJ/statements2csv/internal/summary"
	"github.com/SidInNJ/statements2csv/internal/writer"
)

const version = "1.0.0"

// pageBreak separates pages in client-side extracted text uploads.
const pageBreak = "\n---PAGE_BREAK---\n"

// TransactionJSON is the wire form of one parsed statement line. Optional
// numeric fields are empty strings, matching the CSV contract.
type TransactionJSON struct {
	Date        string `json:"date"`
	Number      string `json:"number,omitempty"`
	Description string `json:"description"`
	Withdrawal  string `json:"withdrawal,omitempty"`
	Deposit     string `json:"deposit,omitempty"`
	Balance     string `json:"balance"`
}

// GroupJSON is the wire form of one summary group.
type GroupJSON struct {
	Key         string `json:"key"`
	Count       int    `json:"count"`
	Withdrawals string `json:"withdrawals,omitempty"`
	Deposits    string `json:"deposits,omitempty"`
	Precedence  int    `json:"precedence"`
}

// ConvertResponse is the JSON response from POST /api/convert.
type ConvertResponse struct {
	Success      bool              `json:"success"`
	Error        string            `json:"error,omitempty"`
	Count        int               `json:"count"`
	Skipped      int               `json:"skipped"`
	Transactions []TransactionJSON `json:"transactions"`
	Groups       []GroupJSON       `json:"groups,omitempty"`
	CSV          string            `json:"csv,omitempty"`
}

// NewApp builds the fiber application with all routes registered.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "statements2csv",
		BodyLimit: 32 << 20,
	})
	app.Get("/api/health", HandleHealth)
	app.Post("/api/convert", HandleConvert)
	return app
}

func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// HandleConvert accepts a multipart PDF upload (field "file") and returns
// the parsed transactions, summary groups, and rendered CSV. Clients that
// extract text themselves can send it in the "extractedText" field to skip
// server-side extraction.
func HandleConvert(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "no file uploaded; use form field 'file'")
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return writeError(c, fiber.StatusBadRequest, "only PDF files are supported")
	}

	var pages []string
	if extracted := c.FormValue("extractedText"); extracted != "" {
		for _, page := range strings.Split(extracted, pageBreak) {
			if page = strings.TrimSpace(page); page != "" {
				pages = append(pages, page)
			}
		}
	}

	if len(pages) == 0 {
		tmp, err := os.CreateTemp("", "statement-*.pdf")
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("temp file: %v", err))
		}
		tmpPath := tmp.Name()
		tmp.Close()
		defer os.Remove(tmpPath)

		if err := c.SaveFile(header, tmpPath); err != nil {
			return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("saving upload: %v", err))
		}
		pages, err = extractor.ExtractText(tmpPath)
		if err != nil {
			return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
	}

	stmt := parser.New().Parse(pages)
	if len(stmt.Transactions) == 0 {
		return writeError(c, fiber.StatusUnprocessableEntity, "no transactions found in statement")
	}

	rep := summary.Build(stmt.Transactions)

	var buf bytes.Buffer
	w := &writer.CSVWriter{BOM: false}
	if err := w.Write(&buf, rep); err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("rendering CSV: %v", err))
	}

	resp := ConvertResponse{
		Success: true,
		Count:   len(rep.Transactions),
		Skipped: stmt.SkippedLines,
		CSV:     buf.String(),
	}
	for _, t := range rep.Transactions {
		resp.Transactions = append(resp.Transactions, toTransactionJSON(t))
	}
	for _, g := range rep.Groups {
		resp.Groups = append(resp.Groups, toGroupJSON(g))
	}
	return c.JSON(resp)
}

func toTransactionJSON(t models.Transaction) TransactionJSON {
	out := TransactionJSON{
		Date:        t.Date,
		Number:      t.CheckNumber,
		Description: t.Description,
		Balance:     t.Balance.String(),
	}
	if t.Withdrawal.Valid {
		out.Withdrawal = t.Withdrawal.Decimal.String()
	}
	if t.Deposit.Valid {
		out.Deposit = t.Deposit.Decimal.String()
	}
	return out
}

func toGroupJSON(g models.SummaryGroup) GroupJSON {
	out := GroupJSON{
		Key:        g.Key,
		Count:      g.Count,
		Precedence: g.Precedence,
	}
	if g.Withdrawals.IsPositive() {
		out.Withdrawals = g.Withdrawals.StringFixed(2)
	}
	if g.Deposits.IsPositive() {
		out.Deposits = g.Deposits.StringFixed(2)
	}
	return out
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{Success: false, Error: msg})
}
