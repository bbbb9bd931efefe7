// token emite un JWT para un operador, usando JWT_SECRET / JWT_ISSUER / JWT_EXPIRATION_MINUTES.
//
// Uso: go run ./cmd/token -role gestor -user cuisine-01
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/stock-manager/pkg/config"
	"github.com/jhoicas/stock-manager/pkg/jwt"
)

func main() {
	role := flag.String("role", jwt.RoleManager, "rol: admin | gestor | lecture")
	user := flag.String("user", "operador", "identificador del operador (claim user_id)")
	flag.Parse()

	switch *role {
	case jwt.RoleAdmin, jwt.RoleManager, jwt.RoleReadOnly:
	default:
		fmt.Fprintf(os.Stderr, "rol desconocido %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está definido")
		os.Exit(1)
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *user, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
