package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Wire types of openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type SessionCreated struct {
	Id openapi_types.UUID `json:"id"`
}

type TurnRequest struct {
	Utterance string `json:"utterance"`
}

type AddressRequest struct {
	Address string `json:"address"`
}

type CartLine struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Receipt struct {
	OrderId    openapi_types.UUID `json:"orderId"`
	Lines      []string           `json:"lines"`
	Total      float64            `json:"total"`
	Driver     string             `json:"driver"`
	Vehicle    string             `json:"vehicle"`
	EtaMinutes int                `json:"etaMinutes"`
	Text       string             `json:"text"`
}

type Turn struct {
	Reply   string     `json:"reply"`
	Status  string     `json:"status"`
	Outcome *string    `json:"outcome,omitempty"`
	Receipt *Receipt   `json:"receipt,omitempty"`
	Cart    []CartLine `json:"cart"`
	Address *string    `json:"address,omitempty"`
}

type OrderSummary struct {
	Id         openapi_types.UUID `json:"id"`
	Receipt    []string           `json:"receipt"`
	Total      float64            `json:"total"`
	AgentId    string             `json:"agentId"`
	EtaMinutes int                `json:"etaMinutes"`
	Status     string             `json:"status"`
}

type Session struct {
	Id                openapi_types.UUID `json:"id"`
	Status            string             `json:"status"`
	Transcript        []Message          `json:"transcript"`
	Cart              []CartLine         `json:"cart"`
	Address           *string            `json:"address,omitempty"`
	PendingSuggestion *string            `json:"pendingSuggestion,omitempty"`
	Orders            []OrderSummary     `json:"orders"`
}

type MenuItem struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type StockLevel struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Agent struct {
	Id        string     `json:"id"`
	Name      string     `json:"name"`
	Vehicle   string     `json:"vehicle"`
	Capacity  string     `json:"capacity"`
	Status    string     `json:"status"`
	Location  Location   `json:"location"`
	BusyUntil *time.Time `json:"busyUntil,omitempty"`
}
