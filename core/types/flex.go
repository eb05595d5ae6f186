package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var null = []byte("null")

// FlexString decodes from a JSON string or number. Servers are not consistent about id types.
type FlexString string

func (s FlexString) String() string {
	return string(s)
}

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, null) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return errors.WithStack(err)
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrapf(err, "can't decode %s as string or number", data)
	}
	*s = FlexString(n.String())
	return nil
}

// Sats is an amount in satoshis that decodes from a JSON number or numeric string.
type Sats int64

func (v Sats) Int64() int64 {
	return int64(v)
}

func (v *Sats) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, null) {
		*v = 0
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return errors.WithStack(err)
		}
		raw = strings.TrimSpace(raw)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid satoshi amount %s", data)
	}
	*v = Sats(n)
	return nil
}
