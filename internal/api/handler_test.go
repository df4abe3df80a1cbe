package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	app := NewApp()

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result map[string]string
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "ok", result["status"])
	assert.Equal(t, "fiber", result["engine"])
}

func TestConvertEndpointRequiresFile(t *testing.T) {
	app := NewApp()

	req := httptest.NewRequest("POST", "/api/convert", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=----test")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, fiber.StatusOK, resp.StatusCode)
}

func TestConvertEndpointRejectsNonPDF(t *testing.T) {
	app := NewApp()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "statement.txt")
	require.NoError(t, err)
	fw.Write([]byte("not a pdf"))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/convert", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestConvertEndpointWithExtractedText(t *testing.T) {
	app := NewApp()

	statement := "Date Number Description Withdrawals Deposits Balance\n" +
		"01/15/24 123 ELECTRONIC PAYMENT VISA 45.67 1234.56\n" +
		"01/16/24 ELECTRONIC PAYMENT VISA 54.33 1180.23\n" +
		"01/17/24 ATM WITHDRAWAL 20.00 1160.23\n"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "statement.pdf")
	require.NoError(t, err)
	fw.Write([]byte("%PDF-1.4 placeholder"))
	require.NoError(t, mw.WriteField("extractedText", statement))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/convert", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result ConvertResponse
	require.NoError(t, json.Unmarshal(body, &result))

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Count)
	require.Len(t, result.Transactions, 3)

	// sorted by description: ATM first
	assert.Equal(t, "ATM", result.Transactions[0].Description[:3])
	assert.Equal(t, "123", result.Transactions[1].Number)
	assert.Equal(t, "45.67", result.Transactions[1].Withdrawal)
	assert.Empty(t, result.Transactions[1].Deposit)

	require.Len(t, result.Groups, 1)
	assert.Equal(t, "ELECTRONIC PAYMENT VISA", result.Groups[0].Key)
	assert.Equal(t, 2, result.Groups[0].Count)
	assert.Equal(t, "100.00", result.Groups[0].Withdrawals)

	assert.Contains(t, result.CSV, "TOTAL for exact matches: ELECTRONIC PAYMENT VISA (2 transactions)")
}

func TestConvertEndpointNoTransactions(t *testing.T) {
	app := NewApp()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "statement.pdf")
	require.NoError(t, err)
	fw.Write([]byte("%PDF-1.4 placeholder"))
	require.NoError(t, mw.WriteField("extractedText", "no header here\njust noise\n"))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/convert", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result ConvertResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}
