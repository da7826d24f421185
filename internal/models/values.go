package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Text é um valor categórico decodificado de JSON com tipagem frouxa.
// Aceita string, número, bool ou null; números inteiros são renderizados sem casas decimais ("2027").
type Text string

// UnmarshalJSON implementa json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*t = Text(strconv.FormatBool(b))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("valor categórico inválido %s: %w", string(data), err)
		}
		*t = Text(formatNumber(n))
	}
	return nil
}

// formatNumber mantém inteiros sem ".0" para que 2027 e "2027" sejam o mesmo valor de filtro
func formatNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return n.String()
}

// NullFloat é uma medida numérica opcional. Valid=false quando ausente, null ou "".
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Float cria uma medida presente
func Float(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// ValueOrZero retorna o valor ou 0 quando ausente
func (n NullFloat) ValueOrZero() float64 {
	if !n.Valid {
		return 0
	}
	return n.Float64
}

// UnmarshalJSON implementa json.Unmarshaler
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = NullFloat{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("medida numérica inválida %q: %w", s, err)
		}
		*n = Float(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("medida numérica inválida %s: %w", string(data), err)
	}
	*n = Float(v)
	return nil
}

// MarshalJSON implementa json.Marshaler
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}
