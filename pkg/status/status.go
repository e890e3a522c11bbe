// Copyright 2025 walteh LLC
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

package status

import "fmt"

// 📊 FileStatus represents the outcome of visiting one file during a rewrite
type FileStatus int

const (
	StatusUnknown         FileStatus = iota
	StatusRewritten                  // Content changed and written back
	StatusUnchanged                  // Read, but no token matched
	StatusSkippedBinary              // Not UTF-8 text; never modified
	StatusSkippedExcluded            // Setup asset or exclusion rule match
	StatusError                      // Read or write failed; the run continues
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusRewritten:
		return "updated"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkippedBinary:
		return "skipped (binary)"
	case StatusSkippedExcluded:
		return "skipped (excluded)"
	case StatusError:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo records the outcome for a single file
type FileInfo struct {
	Path         string     // Path relative to the skeleton root
	Status       FileStatus // Outcome of the visit
	Replacements int        // Token occurrences substituted
	Error        error      // Set only for StatusError
}

// 📈 Summary accumulates per-file outcomes for one rewrite pass.
// The rewrite is single-threaded, so Summary has exactly one writer.
type Summary struct {
	files []FileInfo
}

// 📝 Track records the outcome for one file
func (s *Summary) Track(info FileInfo) {
	s.files = append(s.files, info)
}

// 📋 Files returns every tracked outcome in visit order
func (s *Summary) Files() []FileInfo {
	return s.files
}

// 🔢 Count returns how many files ended in the given status
func (s *Summary) Count(status FileStatus) int {
	n := 0
	for _, f := range s.files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// ✏️ Rewritten returns the files whose content was changed, in visit order
func (s *Summary) Rewritten() []FileInfo {
	var out []FileInfo
	for _, f := range s.files {
		if f.Status == StatusRewritten {
			out = append(out, f)
		}
	}
	return out
}

// ⚠️ Errors returns the files whose visit failed, in visit order
func (s *Summary) Errors() []FileInfo {
	var out []FileInfo
	for _, f := range s.files {
		if f.Status == StatusError {
			out = append(out, f)
		}
	}
	return out
}

// 📝 String returns a one-line account of the pass
func (s *Summary) String() string {
	skipped := s.Count(StatusSkippedBinary) + s.Count(StatusSkippedExcluded)
	return fmt.Sprintf("%d updated, %d unchanged, %d skipped, %d failed",
		s.Count(StatusRewritten),
		s.Count(StatusUnchanged),
		skipped,
		s.Count(StatusError),
	)
}
