package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var firstNames = []string{
	"Alice", "Bob", "Charlie", "Dave", "Eve", "Frank", "Grace", "Hank", "Ivy", "Jack",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis", "Miller", "Wilson", "Moore", "Taylor",
}

// GetRandomName returns a random name by combining a first name with a last name
func GetRandomName() string {
	firstIndex := random.Intn(len(firstNames))
	lastIndex := random.Intn(len(lastNames))

	return fmt.Sprintf("%s %s", firstNames[firstIndex], lastNames[lastIndex])
}
