// Command issue-token prints a signed access token for a user, for local
// testing and service accounts.
//
// Usage:
//
//	issue-token --user=<uuid>
//
// A random user ID is generated when --user is omitted. Requires
// AUTH_JWT_SECRET (or the auth section of CONFIG_PATH) to be set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/wordcloud/internal/auth"
	"github.com/heartmarshall/wordcloud/internal/config"
)

func main() {
	user := flag.String("user", "", "user ID to put in the token subject")
	flag.Parse()

	userID := uuid.New()
	if *user != "" {
		var err error
		if userID, err = uuid.Parse(*user); err != nil {
			fmt.Fprintln(os.Stderr, "Usage: issue-token --user=<uuid>")
			os.Exit(1)
		}
	}

	var cfg struct {
		Auth config.AuthConfig `yaml:"auth"`
	}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			log.Fatalf("read config %s: %v", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("read env: %v", err)
	}
	if err := cfg.Auth.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	token, err := auth.NewJWTManager(cfg.Auth).GenerateAccessToken(userID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user %s, expires in %s\n", userID, cfg.Auth.AccessTokenTTL)
	fmt.Println(token)
}
