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


// Package storage provides the storage abstraction layer for expertmatch.
//
// This package defines the repository interface that decouples storage
// implementation from matching logic, so different backends (BadgerDB,
// in-memory, etc.) can be used interchangeably.
//
// Public constructors in backend packages return the ExpertRepository
// interface rather than concrete types:
//
//	repo, backend, err := badger.NewExpertRepository(path)
//
// This keeps consumers decoupled from BadgerDB specifics and lets tests
// substitute mock implementations without modification. Internal
// constructors may return concrete types since they are only used within
// the implementation package.
//
// Serialization uses the mus-go binary format; the helpers in
// serialization.go wrap the serializers defined alongside the core types.
package storage
