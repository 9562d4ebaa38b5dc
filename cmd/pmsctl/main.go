// pmsctl is the terminal client for the performance service: log in,
// browse weeks and goals, review roles, and pull weekly report PDFs.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pms/internal/client"
	"pms/internal/client/session"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:               "pmsctl",
		Short:             "Terminal client for the performance service",
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/pms/config.yaml)")
	rootCmd.PersistentFlags().String("server", "http://localhost:8081/pms/api", "base URL of the performance API")
	_ = viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(weeksCmd())
	rootCmd.AddCommand(goalsCmd())
	rootCmd.AddCommand(rolesCmd())
	rootCmd.AddCommand(reportCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		viper.AddConfigPath(filepath.Join(home, ".config", "pms"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("PMS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func sessionStore() (*session.FileStore, error) {
	path, err := session.DefaultPath()
	if err != nil {
		return nil, err
	}
	return session.NewFileStore(path), nil
}

// apiClient builds a client from config, attaching the stored session
// token when one exists.
func apiClient() (*client.Client, *session.User, error) {
	store, err := sessionStore()
	if err != nil {
		return nil, nil, err
	}

	user, err := store.CurrentUser()
	var verr *session.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(os.Stderr, "stored session was corrupt and has been cleared; please log in again")
		user = nil
	} else if err != nil {
		return nil, nil, err
	}

	c := client.New(viper.GetString("server"))
	if user != nil {
		c.SetToken(user.Token)
	}
	return c, user, nil
}

// describeErr turns the client error taxonomy into operator-friendly
// messages.
func describeErr(err error) string {
	var remote *client.RemoteError
	if errors.As(err, &remote) {
		return fmt.Sprintf("server rejected the request (%d): %s", remote.Status, remote.Message)
	}
	var timeout *client.TimeoutError
	if errors.As(err, &timeout) {
		return "request timed out; the server may be overloaded, try again"
	}
	var netErr *client.NetworkError
	if errors.As(err, &netErr) {
		return "could not reach the server; check --server and your connection"
	}
	return err.Error()
}
