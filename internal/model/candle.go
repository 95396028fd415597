// Package model defines the value objects exchanged between the Hyperliquid
// client, the screener and the HTTP layer.
package model

import (
    "encoding/json"
    "strconv"
    "strings"
)

// Candle is a single OHLCV candle in the upstream wire format.  Hyperliquid
// encodes prices and volume as JSON strings; UnmarshalJSON accepts both
// strings and bare numbers so locally produced candles decode too.  Interval
// and Symbol may be empty when the upstream omits them.
type Candle struct {
    OpenTime  uint64  `json:"t"` // candle open time (epoch ms)
    CloseTime uint64  `json:"T"` // candle close time (epoch ms)
    Open      float64 `json:"o"`
    High      float64 `json:"h"`
    Low       float64 `json:"l"`
    Close     float64 `json:"c"`
    Volume    float64 `json:"v"`
    NumTrades uint64  `json:"n"`
    Interval  string  `json:"i,omitempty"`
    Symbol    string  `json:"s,omitempty"`
}

// wireFloat decodes a float64 that may arrive either quoted or bare.
type wireFloat float64

func (f *wireFloat) UnmarshalJSON(b []byte) error {
    s := strings.Trim(string(b), `"`)
    if s == "" || s == "null" {
        *f = 0
        return nil
    }
    v, err := strconv.ParseFloat(s, 64)
    if err != nil {
        return err
    }
    *f = wireFloat(v)
    return nil
}

// UnmarshalJSON decodes a candle from the upstream representation.
func (c *Candle) UnmarshalJSON(b []byte) error {
    var raw struct {
        OpenTime  uint64    `json:"t"`
        CloseTime uint64    `json:"T"`
        Open      wireFloat `json:"o"`
        High      wireFloat `json:"h"`
        Low       wireFloat `json:"l"`
        Close     wireFloat `json:"c"`
        Volume    wireFloat `json:"v"`
        NumTrades uint64    `json:"n"`
        Interval  string    `json:"i"`
        Symbol    string    `json:"s"`
    }
    if err := json.Unmarshal(b, &raw); err != nil {
        return err
    }
    c.OpenTime = raw.OpenTime
    c.CloseTime = raw.CloseTime
    c.Open = float64(raw.Open)
    c.High = float64(raw.High)
    c.Low = float64(raw.Low)
    c.Close = float64(raw.Close)
    c.Volume = float64(raw.Volume)
    c.NumTrades = raw.NumTrades
    c.Interval = raw.Interval
    c.Symbol = raw.Symbol
    return nil
}
