package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /mangas", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"nombre":"Berserk","fechaLanzamiento":"1989-08-25","temporadas":2,"anime":true,"juego":false,"pelicula":true,"pais":{"id":1,"nombre":"Japon"},"tipo":{"id":1,"nombre":"Manga"}}]`))
	})
	mux.HandleFunc("GET /mangas/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":true,"msg":"Objeto no encontrado"}`))
	})
	mux.HandleFunc("DELETE /mangas/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "2" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":true,"msg":"Manga tiene usuarios asociados"}`))
			return
		}
		w.Write([]byte(`{"id":1,"nombre":"Berserk","pais":"Japon","tipo":"Manga"}`))
	})
	mux.HandleFunc("GET /paises", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"nombre":"Japon"}]`))
	})
	mux.HandleFunc("GET /tipos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream down`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPClient(t *testing.T) {
	c := NewHTTPClient(newTestServer(t).URL)
	ctx := context.Background()

	t.Run("List", func(t *testing.T) {
		list, err := c.GetAllManga(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Berserk", list[0].Name)
		assert.Equal(t, "Japon", list[0].Country.Name)
		assert.Equal(t, "1989-08-25", list[0].ReleaseDate.Format("2006-01-02"))
	})

	t.Run("GetNotFound", func(t *testing.T) {
		_, err := c.GetMangaByID(ctx, 9)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "Objeto no encontrado", apiErr.Msg)
	})

	t.Run("Delete", func(t *testing.T) {
		summary, err := c.DeleteManga(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Manga", summary.Type)

		_, err = c.DeleteManga(ctx, 2)
		assert.EqualError(t, err, "Manga tiene usuarios asociados (status 400)")
	})

	t.Run("Lookups", func(t *testing.T) {
		countries, err := c.GetCountries(ctx)
		require.NoError(t, err)
		assert.Len(t, countries, 1)

		_, err = c.GetTypes(ctx)
		assert.EqualError(t, err, "request failed with status 502")
	})
}
