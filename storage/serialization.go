// Copyright 2026 Scholarch Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/scholarch/expertmatch/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalExpertRecord serializes an ExpertRecord to bytes.
func MarshalExpertRecord(record *core.ExpertRecord) []byte {
	buf := make([]byte, core.ExpertRecordMUS.Size(*record))
	core.ExpertRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalExpertRecord deserializes an ExpertRecord from bytes.
func UnmarshalExpertRecord(data []byte) (*core.ExpertRecord, error) {
	record, _, err := core.ExpertRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
