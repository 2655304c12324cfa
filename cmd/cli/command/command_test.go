package command

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMangaCommands(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /mangas/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7,"nombre":"Vagabond","fechaLanzamiento":"1998-09-03","temporadas":1,"anime":false,"juego":false,"pelicula":false,"pais":{"id":1,"nombre":"Japon"},"tipo":{"id":1,"nombre":"Manga"}}`))
	})
	mux.HandleFunc("GET /mangas", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	out, err := runCLI(t, "manga", "get", "7", "--api", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Nombre: Vagabond")
	assert.Contains(t, out, "Lanzamiento: 1998-09-03")

	out, err = runCLI(t, "manga", "list", "--api", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "No manga found.")

	_, err = runCLI(t, "manga", "get", "abc", "--api", srv.URL)
	assert.ErrorContains(t, err, "invalid manga ID")
}
