package command

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mangacatalog/cmd/cli/command/client"
	"mangacatalog/internal/microservices/http-api/dto"
)

var mangaCmd = &cobra.Command{
	Use:   "manga",
	Short: "Browse catalog entries through the API",
}

var listMangaCmd = &cobra.Command{
	Use:   "list",
	Short: "List all manga",
	RunE: func(cmd *cobra.Command, args []string) error {
		mangas, err := client.NewHTTPClient(apiURL).GetAllManga(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get manga list: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(mangas) == 0 {
			fmt.Fprintln(out, "No manga found.")
			return nil
		}
		fmt.Fprintf(out, "Found %d manga:\n\n", len(mangas))
		for _, m := range mangas {
			printManga(out, m)
			fmt.Fprintln(out, strings.Repeat("-", 50))
		}
		return nil
	},
}

var getMangaCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get manga by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid manga ID: %w", err)
		}
		m, err := client.NewHTTPClient(apiURL).GetMangaByID(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get manga: %w", err)
		}
		printManga(cmd.OutOrStdout(), *m)
		return nil
	},
}

var deleteMangaCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a manga with no associated users",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid manga ID: %w", err)
		}
		s, err := client.NewHTTPClient(apiURL).DeleteManga(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to delete manga: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d: %s (%s, %s)\n", s.ID, s.Name, s.Country, s.Type)
		return nil
	},
}

var lookupsCmd = &cobra.Command{
	Use:   "lookups",
	Short: "List the countries and types a manga can reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.NewHTTPClient(apiURL)
		countries, err := c.GetCountries(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get countries: %w", err)
		}
		types, err := c.GetTypes(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get types: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Paises:")
		for _, l := range countries {
			fmt.Fprintf(out, "  %d\t%s\n", l.ID, l.Name)
		}
		fmt.Fprintln(out, "Tipos:")
		for _, l := range types {
			fmt.Fprintf(out, "  %d\t%s\n", l.ID, l.Name)
		}
		return nil
	},
}

func printManga(out io.Writer, m dto.MangaResponse) {
	fmt.Fprintf(out, "ID: %d\n", m.ID)
	fmt.Fprintf(out, "Nombre: %s\n", m.Name)
	fmt.Fprintf(out, "Lanzamiento: %s\n", m.ReleaseDate.Format("2006-01-02"))
	fmt.Fprintf(out, "Temporadas: %d\n", m.Seasons)
	fmt.Fprintf(out, "Pais: %s\n", m.Country.Name)
	fmt.Fprintf(out, "Tipo: %s\n", m.Type.Name)
	fmt.Fprintf(out, "Anime: %t  Juego: %t  Pelicula: %t\n", m.IsAnimation, m.IsGame, m.IsFilm)
}

func init() {
	mangaCmd.AddCommand(listMangaCmd, getMangaCmd, deleteMangaCmd)
	rootCmd.AddCommand(mangaCmd, lookupsCmd)
}
