// SPDX-License-Identifier: MIT

package runstore

import (
	"encoding/json"
	"fmt"
)

// EncodeRun serializes r as JSON.
func EncodeRun(r RunRecord) ([]byte, error) {
	return json.Marshal(r)
}

// DecodeRun parses a payload written by EncodeRun and checks its versions.
func DecodeRun(data []byte) (RunRecord, error) {
	var r RunRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return RunRecord{}, err
	}
	if err := checkVersion(r); err != nil {
		return RunRecord{}, err
	}

	return r, nil
}

func checkVersion(r RunRecord) error {
	if r.SchemaVersion != CurrentSchemaVersion || r.CodecVersion != CurrentCodecVersion {
		return fmt.Errorf("schema=%d codec=%d: %w", r.SchemaVersion, r.CodecVersion, ErrVersionMismatch)
	}

	return nil
}
