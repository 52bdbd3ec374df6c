package handler

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ascforge/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testEngine(maxUploadBytes int64) *gin.Engine {
	h := NewInvoiceHandler(service.NewInvoiceService(), maxUploadBytes)
	r := gin.New()
	r.GET("/api/v1/brands", h.Brands)
	r.POST("/api/v1/invoices/generate", h.Generate)
	r.POST("/api/v1/invoices/preview", h.Preview)
	return r
}

// harmanUpload builds a valid Harman export workbook.
func harmanUpload(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"ASC Name", "Description", "Call Charge", "Owner Name", "Contact No.", "PAN No.", "GST No.", "Address"},
		{"Alpha Services", "Repair", "10.00", "R Kumar", "9876543210", "ABCDE1234F", "09ABCDE1234F1Z5", "12 MG Road"},
		{"Beta Traders", "Repair", "20.00", "S Gupta", "9876500000", "FGHIJ5678K", "09FGHIJ5678K1Z2", "4 Ring Road"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func multipartBody(t *testing.T, brand, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if brand != "" {
		require.NoError(t, w.WriteField("brand", brand))
	}
	if filename != "" {
		fw, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func doUpload(t *testing.T, r *gin.Engine, path, brand, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, brand, filename, content)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestBrands(t *testing.T) {
	r := testEngine(0)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/brands", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, []interface{}{"Amazon", "Harman", "Philips", "LifeLong", "CandorCRM"}, resp.Data)
}

func TestGenerate_ReturnsZip(t *testing.T) {
	r := testEngine(0)
	rec := doUpload(t, r, "/api/v1/invoices/generate", "Harman", "export.xlsx", harmanUpload(t))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	disposition := rec.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "Harman_Invoices_")
	assert.Contains(t, disposition, ".zip")

	zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	require.NoError(t, err)
	// Two entities, invoice + raw data each.
	require.Len(t, zr.File, 4)
	assert.True(t, strings.HasPrefix(zr.File[0].Name, "Invoice_Alpha Services_"))
	assert.True(t, strings.HasPrefix(zr.File[1].Name, "RawData_Alpha Services_"))
}

func TestPreview_Summary(t *testing.T) {
	r := testEngine(0)
	rec := doUpload(t, r, "/api/v1/invoices/preview", "Harman", "export.xlsx", harmanUpload(t))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.True(t, resp.Success)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var summary previewSummary
	require.NoError(t, json.Unmarshal(data, &summary))

	assert.Equal(t, "Harman", summary.Brand)
	assert.Equal(t, 2, summary.Entities)
	assert.Equal(t, 2, summary.TotalRecords)
	assert.Equal(t, "30.00", summary.TotalAmount)
	require.Len(t, summary.Rows, 2)
	assert.Equal(t, "Alpha Services", summary.Rows[0].Entity)
	assert.Equal(t, "10.00", summary.Rows[0].TotalAmount)
}

func TestGenerate_MissingBrand(t *testing.T) {
	r := testEngine(0)
	rec := doUpload(t, r, "/api/v1/invoices/generate", "", "export.xlsx", harmanUpload(t))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "MISSING_BRAND", resp.Error.Code)
}

func TestGenerate_MissingFile(t *testing.T) {
	r := testEngine(0)
	rec := doUpload(t, r, "/api/v1/invoices/generate", "Harman", "", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_FILE", decodeEnvelope(t, rec).Error.Code)
}

func TestGenerate_UnknownBrand(t *testing.T) {
	r := testEngine(0)
	rec := doUpload(t, r, "/api/v1/invoices/generate", "Nokia", "export.xlsx", harmanUpload(t))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_BRAND", decodeEnvelope(t, rec).Error.Code)
}

func TestGenerate_WrongExtension(t *testing.T) {
	r := testEngine(0)
	rec := doUpload(t, r, "/api/v1/invoices/generate", "Harman", "export.csv", harmanUpload(t))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", decodeEnvelope(t, rec).Error.Code)
}

func TestGenerate_FileTooLarge(t *testing.T) {
	r := testEngine(16)
	rec := doUpload(t, r, "/api/v1/invoices/generate", "Harman", "export.xlsx", harmanUpload(t))

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "FILE_TOO_LARGE", decodeEnvelope(t, rec).Error.Code)
}

func TestGenerate_InvalidSchema(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"ASC Name", "Call Charge"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	row := []interface{}{"Alpha", "10"}
	require.NoError(t, f.SetSheetRow(sheet, "A2", &row))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	r := testEngine(0)
	rec := doUpload(t, r, "/api/v1/invoices/generate", "Harman", "export.xlsx", buf.Bytes())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_SCHEMA", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Description")
}

func TestGenerate_BadCell(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"ASC Name", "Description", "Call Charge", "Owner Name", "Contact No.", "PAN No.", "GST No.", "Address"},
		{"Alpha", "Repair", "ten rupees", "R Kumar", "98765", "ABCDE1234F", "09X", "Road"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	r := testEngine(0)
	rec := doUpload(t, r, "/api/v1/invoices/generate", "Harman", "export.xlsx", buf.Bytes())

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "INVALID_CELL", decodeEnvelope(t, rec).Error.Code)
}
