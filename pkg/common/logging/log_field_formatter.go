// Copyright (c) 2024 The netsched Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	log "github.com/sirupsen/logrus"
)

// LogFieldFormatter adds a fixed set of fields to every log entry before
// delegating to the wrapped formatter. Fields already present on the entry
// win over the defaults.
type LogFieldFormatter struct {
	log.Fields
	log.Formatter
}

// Format adds the default fields to the entry and formats it.
func (f *LogFieldFormatter) Format(entry *log.Entry) ([]byte, error) {
	for field, value := range f.Fields {
		if _, ok := entry.Data[field]; !ok {
			entry.Data[field] = value
		}
	}
	return f.Formatter.Format(entry)
}
