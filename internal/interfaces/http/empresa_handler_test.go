package http_test

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
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/application/usecase"
	"github.com/jhoicas/Empresas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Empresas-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/Empresas-api/internal/interfaces/http"
	"github.com/jhoicas/Empresas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testBaseURL = "http://api.test"
	testOrigin  = "http://front.test"
	testRUC     = "2090123456001"
)

type testEnv struct {
	app        *fiber.App
	uploadsDir string
	store      *memory.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	logos, err := storage.NewFilesystem(dir)
	require.NoError(t, err)

	store := memory.NewStore()
	log := logger.Nop()
	uc := usecase.NewEmpresaUseCase(store, logos, testBaseURL, log)

	app := apphttp.NewApp(apphttp.AppConfig{
		Name:          "empresas-test",
		BodyLimit:     1 << 20,
		AllowedOrigin: testOrigin,
		Logger:        log,
	})
	apphttp.Router(app, apphttp.RouterDeps{
		EmpresaUC:  uc,
		Logger:     log,
		UploadsDir: logos.BasePath(),
		AppName:    "empresas-test",
	})
	return &testEnv{app: app, uploadsDir: logos.BasePath(), store: store}
}

type fileField struct {
	name    string
	content []byte
}

// multipartBody arma un cuerpo multipart con campos de texto y, opcionalmente, el logo.
func multipartBody(t *testing.T, fields map[string]string, logo *fileField) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if logo != nil {
		fw, err := w.CreateFormFile("logo", logo.name)
		require.NoError(t, err)
		_, err = fw.Write(logo.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func (e *testEnv) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) send(t *testing.T, method, path string, fields map[string]string, logo *fileField) *http.Response {
	t.Helper()
	body, ctype := multipartBody(t, fields, logo)
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", ctype)
	return e.do(t, req)
}

func (e *testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()
	return e.do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func validFields(ruc string) map[string]string {
	return map[string]string{
		"ruc":          ruc,
		"razon_social": "Galápagos Tours S.A.",
		"correo":       "info+" + ruc + "@galapagostours.ec",
		"direccion":    "Av. Charles Darwin y 12 de Febrero",
		"telefono":     "052526789",
		"pagina_web":   "https://galapagostours.ec",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo: crear → subir logo → borrar
// ──────────────────────────────────────────────────────────────────────────────

func TestEmpresas_EscenarioCompleto(t *testing.T) {
	env := newTestEnv(t)
	logoPath := filepath.Join(env.uploadsDir, testRUC+"_photo.png")

	// 1. Crear sin logo → 201 y logo_url null
	resp := env.send(t, http.MethodPost, "/empresas/", validFields(testRUC), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.EmpresaResponse](t, resp)
	assert.Equal(t, testRUC, created.RUC)
	assert.Nil(t, created.LogoURL)

	// 2. Actualizar con logo photo.png → logo_url no nulo y archivo en uploads
	resp = env.send(t, http.MethodPatch, "/empresas/"+testRUC, nil, &fileField{name: "photo.png", content: []byte("\x89PNG-v1")})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.EmpresaResponse](t, resp)
	require.NotNil(t, updated.LogoURL)
	assert.Equal(t, testBaseURL+"/empresas/"+testRUC+"/logo", *updated.LogoURL)
	assert.FileExists(t, logoPath)

	// 3. El logo es recuperable por la URL derivada y por /uploads
	resp = env.get(t, "/empresas/"+testRUC+"/logo")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, []byte("\x89PNG-v1"), body)

	resp = env.get(t, "/uploads/"+testRUC+"_photo.png")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// 4. Borrar → archivo eliminado y GET 404
	resp = env.do(t, httptest.NewRequest(http.MethodDelete, "/empresas/"+testRUC, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	msg := decode[dto.MessageResponse](t, resp)
	assert.Equal(t, testRUC, msg.RUC)
	assert.Contains(t, msg.Message, testRUC)
	assert.NoFileExists(t, logoPath)

	resp = env.get(t, "/empresas/?ruc="+testRUC)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = env.get(t, "/empresas/"+testRUC+"/logo")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	fields := validFields(testRUC)

	resp := env.send(t, http.MethodPost, "/empresas/", fields, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	got := decode[dto.EmpresaResponse](t, env.get(t, "/empresas/?ruc="+testRUC))
	assert.Equal(t, fields["ruc"], got.RUC)
	assert.Equal(t, fields["razon_social"], got.RazonSocial)
	assert.Equal(t, fields["correo"], got.Correo)
	assert.Equal(t, fields["direccion"], got.Direccion)
	assert.Equal(t, fields["telefono"], got.Telefono)
	assert.Equal(t, fields["pagina_web"], got.PaginaWeb)
}

func TestCreate_RUCDuplicado_NoModificaDatos(t *testing.T) {
	env := newTestEnv(t)

	resp := env.send(t, http.MethodPost, "/empresas/", validFields(testRUC), &fileField{name: "logo.png", content: []byte("original")})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	otro := validFields(testRUC)
	otro["razon_social"] = "Otra Razón"
	otro["correo"] = "otro@ejemplo.ec"
	resp = env.send(t, http.MethodPost, "/empresas/", otro, &fileField{name: "logo.png", content: []byte("intruso")})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "DUPLICATE_RUC", errBody.Code)

	got := decode[dto.EmpresaResponse](t, env.get(t, "/empresas/?ruc="+testRUC))
	assert.Equal(t, "Galápagos Tours S.A.", got.RazonSocial)

	data, err := os.ReadFile(filepath.Join(env.uploadsDir, testRUC+"_logo.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), data, "el logo existente no se sobrescribe")
}

func TestCreate_CorreoDuplicado(t *testing.T) {
	env := newTestEnv(t)
	a := validFields("1790012345001")
	b := validFields("1790012345002")
	b["correo"] = a["correo"]

	resp := env.send(t, http.MethodPost, "/empresas/", a, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.send(t, http.MethodPost, "/empresas/", b, &fileField{name: "b.png", content: []byte("b")})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_EMAIL", decode[dto.ErrorResponse](t, resp).Code)
	assert.NoFileExists(t, filepath.Join(env.uploadsDir, "1790012345002_b.png"), "el logo de la creación fallida se limpia")
}

func TestCreate_Validacion(t *testing.T) {
	env := newTestEnv(t)

	fields := validFields(testRUC)
	delete(fields, "telefono")
	fields["correo"] = strings.Repeat("c", 256)
	fields["ruc"] = "123"

	resp := env.send(t, http.MethodPost, "/empresas/", fields, nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Fields, "telefono")
	assert.Contains(t, body.Fields, "correo")
	assert.Contains(t, body.Fields, "ruc")
	assert.Equal(t, 0, env.store.Len())
}

func TestCreate_JSON(t *testing.T) {
	env := newTestEnv(t)
	payload, _ := json.Marshal(validFields(testRUC))
	req := httptest.NewRequest(http.MethodPost, "/empresas/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp := env.do(t, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Nil(t, decode[dto.EmpresaResponse](t, resp).LogoURL)
}

func TestCreate_FalloDeEscrituraDelLogo(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.RemoveAll(env.uploadsDir))

	resp := env.send(t, http.MethodPost, "/empresas/", validFields(testRUC), &fileField{name: "photo.png", content: []byte("x")})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "STORAGE_WRITE_FAILED", decode[dto.ErrorResponse](t, resp).Code)

	resp = env.get(t, "/empresas/?ruc="+testRUC)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "no se confirma la empresa sin su logo")
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// List / Get
// ──────────────────────────────────────────────────────────────────────────────

func TestList(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/empresas/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]dto.EmpresaResponse](t, resp))

	for _, r := range []string{"1790012345001", "1790012345002"} {
		resp := env.send(t, http.MethodPost, "/empresas/", validFields(r), nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	list := decode[[]dto.EmpresaResponse](t, env.get(t, "/empresas"))
	assert.Len(t, list, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestPatch_SinCamposNoCambiaNada(t *testing.T) {
	env := newTestEnv(t)
	resp := env.send(t, http.MethodPost, "/empresas/", validFields(testRUC), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	before := decode[dto.EmpresaResponse](t, resp)

	time.Sleep(time.Millisecond)
	resp = env.send(t, http.MethodPatch, "/empresas/"+testRUC, map[string]string{"direccion": "", "telefono": ""}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	after := decode[dto.EmpresaResponse](t, resp)
	assert.Equal(t, before, after, "ni siquiera updated_at cambia")

	stored := decode[dto.EmpresaResponse](t, env.get(t, "/empresas/?ruc="+testRUC))
	assert.Equal(t, before, stored)
}

func TestPatch_CorreoNoValidaFormato(t *testing.T) {
	env := newTestEnv(t)
	resp := env.send(t, http.MethodPost, "/empresas/", validFields(testRUC), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.send(t, http.MethodPatch, "/empresas/"+testRUC, map[string]string{"correo": "recepcion"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "recepcion", decode[dto.EmpresaResponse](t, resp).Correo)
}

func TestPatch_AplicaSoloCamposPresentes(t *testing.T) {
	env := newTestEnv(t)
	resp := env.send(t, http.MethodPost, "/empresas/", validFields(testRUC), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.send(t, http.MethodPatch, "/empresas/"+testRUC, map[string]string{"telefono": "0999999999"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.EmpresaResponse](t, resp)
	assert.Equal(t, "0999999999", got.Telefono)
	assert.Equal(t, "Galápagos Tours S.A.", got.RazonSocial)
}

func TestPatch_NoEncontrada(t *testing.T) {
	env := newTestEnv(t)
	resp := env.send(t, http.MethodPatch, "/empresas/"+testRUC, map[string]string{"telefono": "1"}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestPut_RequiereTodosLosCampos(t *testing.T) {
	env := newTestEnv(t)
	resp := env.send(t, http.MethodPost, "/empresas/", validFields(testRUC), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.send(t, http.MethodPut, "/empresas/"+testRUC, map[string]string{"razon_social": "Solo nombre"}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Contains(t, body.Fields, "correo")

	full := validFields(testRUC)
	delete(full, "ruc")
	full["razon_social"] = "Nueva Razón"
	resp = env.send(t, http.MethodPut, "/empresas/"+testRUC, full, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Nueva Razón", decode[dto.EmpresaResponse](t, resp).RazonSocial)
}

func TestPut_NoEncontrada(t *testing.T) {
	env := newTestEnv(t)
	full := validFields(testRUC)
	delete(full, "ruc")
	resp := env.send(t, http.MethodPut, "/empresas/"+testRUC, full, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUpdate_ReemplazaLogo(t *testing.T) {
	env := newTestEnv(t)
	oldPath := filepath.Join(env.uploadsDir, testRUC+"_viejo.png")
	newPath := filepath.Join(env.uploadsDir, testRUC+"_nuevo.jpg")

	resp := env.send(t, http.MethodPost, "/empresas/", validFields(testRUC), &fileField{name: "viejo.png", content: []byte("v1")})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.EmpresaResponse](t, resp)
	assert.FileExists(t, oldPath)

	resp = env.send(t, http.MethodPatch, "/empresas/"+testRUC, nil, &fileField{name: "nuevo.jpg", content: []byte("v2")})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.EmpresaResponse](t, resp)

	assert.NoFileExists(t, oldPath)
	assert.FileExists(t, newPath)
	assert.Equal(t, created.LogoURL, updated.LogoURL, "la URL derivada no cambia")

	resp = env.get(t, "/empresas/"+testRUC+"/logo")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, []byte("v2"), body)
}

func TestUpdate_MismoNombreDeLogoSobrescribe(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(env.uploadsDir, testRUC+"_logo.png")

	resp := env.send(t, http.MethodPost, "/empresas/", validFields(testRUC), &fileField{name: "logo.png", content: []byte("v1")})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.send(t, http.MethodPatch, "/empresas/"+testRUC, nil, &fileField{name: "logo.png", content: []byte("v2")})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}

func TestUpdate_CorreoDuplicadoNoCambiaElLogo(t *testing.T) {
	env := newTestEnv(t)
	const otroRUC = "0990012345001"

	resp := env.send(t, http.MethodPost, "/empresas/", validFields(testRUC), &fileField{name: "logo.png", content: []byte("v1")})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = env.send(t, http.MethodPost, "/empresas/", validFields(otroRUC), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	dup := map[string]string{"correo": validFields(otroRUC)["correo"]}
	resp = env.send(t, http.MethodPatch, "/empresas/"+testRUC, dup, &fileField{name: "logo.png", content: []byte("v2")})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = env.get(t, "/empresas/"+testRUC+"/logo")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, []byte("v1"), body)

	entries, err := os.ReadDir(env.uploadsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "el provisional se descarta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / errores generales
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_NoEncontrada(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, httptest.NewRequest(http.MethodDelete, "/empresas/"+testRUC, nil))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestContentTypeNoSoportado(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodPost, "/empresas/", strings.NewReader("<empresa/>"))
	req.Header.Set("Content-Type", "application/xml")
	resp := env.do(t, req)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRutaInexistente(t *testing.T) {
	env := newTestEnv(t)
	resp := env.get(t, "/no-existe")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCORS_OrigenConfigurado(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodOptions, "/empresas/", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	resp := env.do(t, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, testOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	resp := env.get(t, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
