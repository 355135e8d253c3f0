// Package movapi implementa el cliente HTTP de la API de movimientos, el
// colaborador externo que alimenta los reportes. Solo lectura.
package movapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/frontdesk/ingresos-api/internal/application/dto"
	"github.com/frontdesk/ingresos-api/internal/domain"
)

const movementsPath = "/api/movements"

// Client implementa report.MovementSource contra la API de movimientos.
// Usa net/http de la stdlib; no requiere librerías de terceros.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. timeout acota la petición completa.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchMovements descarga la lista cruda de movimientos.
func (c *Client) FetchMovements(ctx context.Context) ([]dto.RawMovement, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+movementsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("movapi: construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Leemos un fragmento del cuerpo para el diagnóstico sin arrastrar
		// respuestas enormes al log.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrUpstream, resp.StatusCode, string(snippet))
	}

	var raws []dto.RawMovement
	if err := json.NewDecoder(resp.Body).Decode(&raws); err != nil {
		return nil, fmt.Errorf("%w: decodificar respuesta: %v", domain.ErrUpstream, err)
	}
	return raws, nil
}
