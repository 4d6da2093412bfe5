package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/xltables-go/internal/config"
	"github.com/ukaji3/xltables-go/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *storage.Store) {
	t.Helper()

	store, err := storage.New(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("storage.New failed: %v", err)
	}
	cfg := &config.Config{Addr: ":0", UploadDir: store.Dir(), MaxUploadBytes: 1 << 20}
	return New(cfg, store, zap.NewNop()), store
}

func do(t *testing.T, s *Server, req *http.Request) (int, map[string]interface{}) {
	t.Helper()

	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", body, err)
	}
	return resp.StatusCode, out
}

func uploadRequest(t *testing.T, name string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(content)
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/excel/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func reportWorkbook(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		t.Fatal(err)
	}
	f.SetCellValue("Sheet1", "A1", "Report")
	f.SetCellStyle("Sheet1", "A1", "A1", boldStyle)
	f.SetCellValue("Sheet1", "A2", "Name")
	f.SetCellValue("Sheet1", "B2", "Age")
	f.SetCellValue("Sheet1", "A3", "Bob")
	f.SetCellValue("Sheet1", "B3", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestUploadListDelete(t *testing.T) {
	s, _ := newTestServer(t)

	status, body := do(t, s, uploadRequest(t, "notes.txt", []byte("hello")))
	if status != http.StatusOK || body["success"] != true {
		t.Fatalf("upload: %d %v", status, body)
	}
	filename := body["filename"].(string)
	if !strings.HasSuffix(filename, "-notes.txt") || body["originalname"] != "notes.txt" {
		t.Errorf("upload body = %v", body)
	}

	status, body = do(t, s, httptest.NewRequest(http.MethodGet, "/api/excel/files", nil))
	if status != http.StatusOK {
		t.Fatalf("files: %d %v", status, body)
	}
	files := body["files"].([]interface{})
	if len(files) != 1 || files[0].(map[string]interface{})["filename"] != filename {
		t.Errorf("files = %v", files)
	}

	status, body = do(t, s, httptest.NewRequest(http.MethodDelete, "/api/excel/delete/"+filename, nil))
	if status != http.StatusOK || body["message"] != "File deleted successfully" {
		t.Errorf("delete: %d %v", status, body)
	}

	status, body = do(t, s, httptest.NewRequest(http.MethodDelete, "/api/excel/delete/"+filename, nil))
	if status != http.StatusNotFound || body["message"] != "File not found" {
		t.Errorf("second delete: %d %v", status, body)
	}
}

func TestUpload_NoFile(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/excel/upload", nil)
	status, body := do(t, s, req)
	if status != http.StatusBadRequest || body["message"] != "No file uploaded" {
		t.Errorf("got %d %v", status, body)
	}
}

func TestRead_Workbook(t *testing.T) {
	s, store := newTestServer(t)

	info, err := store.Save("report.xlsx", bytes.NewReader(reportWorkbook(t)))
	if err != nil {
		t.Fatal(err)
	}

	status, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/excel/read/"+info.Filename, nil))
	if status != http.StatusOK {
		t.Fatalf("read: %d %v", status, body)
	}
	if body["type"] != ".xlsx" || body["message"] != "" {
		t.Errorf("read envelope = %v", body)
	}

	content := body["content"].([]interface{})
	if len(content) != 1 {
		t.Fatalf("Expected 1 table, got %v", content)
	}
	table := content[0].(map[string]interface{})
	if table["title"] != "Report" {
		t.Errorf("title = %v", table["title"])
	}
	rows := table["rows"].([]interface{})
	if first := rows[0].([]interface{}); first[0] != "Bob" || first[1] != float64(30) {
		t.Errorf("rows = %v", rows)
	}
}

func TestRead_TextPassThrough(t *testing.T) {
	s, store := newTestServer(t)

	info, err := store.Save("notes.txt", strings.NewReader("plain text"))
	if err != nil {
		t.Fatal(err)
	}

	status, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/excel/read/"+info.Filename, nil))
	if status != http.StatusOK || body["content"] != "plain text" || body["type"] != ".txt" {
		t.Errorf("got %d %v", status, body)
	}
}

func TestRead_CSVWithoutTables(t *testing.T) {
	s, store := newTestServer(t)

	info, err := store.Save("data.csv", strings.NewReader("a,b\n1,2\n"))
	if err != nil {
		t.Fatal(err)
	}

	_, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/excel/read/"+info.Filename, nil))
	content := body["content"].([]interface{})
	if len(content) != 2 || body["message"] != "" {
		t.Errorf("got %v", body)
	}
}

func TestRead_Errors(t *testing.T) {
	s, store := newTestServer(t)

	status, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/excel/read/missing.xlsx", nil))
	if status != http.StatusNotFound || body["success"] != false {
		t.Errorf("missing: %d %v", status, body)
	}

	status, _ = do(t, s, httptest.NewRequest(http.MethodGet, "/api/excel/read/..%2Fsecret.xlsx", nil))
	if status != http.StatusNotFound {
		t.Errorf("traversal: %d", status)
	}

	if err := os.WriteFile(filepath.Join(store.Dir(), "broken.xlsx"), []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	status, body = do(t, s, httptest.NewRequest(http.MethodGet, "/api/excel/read/broken.xlsx", nil))
	if status != http.StatusInternalServerError || body["message"] != "Error reading file" || body["details"] == nil {
		t.Errorf("broken: %d %v", status, body)
	}
}

func TestView(t *testing.T) {
	s, store := newTestServer(t)

	info, err := store.Save("people.csv", strings.NewReader("Name,Age\nBob,30\n"))
	if err != nil {
		t.Fatal(err)
	}

	status, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/excel/view/"+info.Filename, nil))
	if status != http.StatusOK {
		t.Fatalf("view: %d %v", status, body)
	}
	data := body["data"].([]interface{})
	record := data[0].(map[string]interface{})
	if len(data) != 1 || record["Name"] != "Bob" || record["Age"] != "30" {
		t.Errorf("data = %v", data)
	}

	txt, err := store.Save("notes.txt", strings.NewReader("x"))
	if err != nil {
		t.Fatal(err)
	}
	status, _ = do(t, s, httptest.NewRequest(http.MethodGet, "/api/excel/view/"+txt.Filename, nil))
	if status != http.StatusUnsupportedMediaType {
		t.Errorf("view txt: %d", status)
	}
}

func TestDownload(t *testing.T) {
	s, store := newTestServer(t)

	info, err := store.Save("data.csv", strings.NewReader("a,b\n"))
	if err != nil {
		t.Fatal(err)
	}

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/excel/download/"+info.Filename, nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "a,b\n" {
		t.Errorf("download: %d %q", resp.StatusCode, body)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	status, _ := do(t, s, httptest.NewRequest(http.MethodGet, "/api/excel/download/nope.csv", nil))
	if status != http.StatusNotFound {
		t.Errorf("missing download: %d", status)
	}
}

func TestCORS(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/excel/files", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("Expected CORS header")
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("Expected request id header")
	}
}
