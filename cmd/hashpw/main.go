// Command hashpw prints a bcrypt hash for auth.admin_password_hash.
//
//	hashpw 'front-desk-password'
//	echo 'front-desk-password' | hashpw
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"hotel-frontoffice-backend/internal/auth"
)

func main() {
	logger := log.New(os.Stderr, "hashpw ", 0)

	password := ""
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			logger.Fatalf("failed to read password from stdin: %v", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		logger.Fatal("password must not be empty")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		logger.Fatalf("failed to hash password: %v", err)
	}
	fmt.Println(hash)
}
