// Package service contains the business logic behind simple endpoints that
// do not need their own package.
package service

import (
    "fmt"

    "github.com/iliyamo/perp-screener/internal/model"
)

// GetGreeting builds the greeting payload for a name.  The name is used
// as-is; empty strings and special characters are allowed.
func GetGreeting(name string) model.Greeting {
    return model.Greeting{
        Message: fmt.Sprintf("Hello, %s!", name),
        Name:    name,
    }
}
