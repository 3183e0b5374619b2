// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package analyzer implements the staticaccess analysis pass.
//
// # Overview
//
// StaticAccess detects static members of C++ classes that are accessed through
// an object expression instead of the class name. The C++ sources of a package
// are taken from its other files and dumped with clang.
//
// # Example
//
// Before:
//
//	struct C { static int x; };
//
//	int f(C c) {
//	    return c.x;  // static member accessed through instance
//	}
//
// After applying staticaccess's suggested fix:
//
//	int f(C c) {
//	    return C::x;
//	}
//
// # Flagged Members
//
// The analyzer reports accesses of:
//
//   - Static data members and static member functions
//   - Enumerators of enumerations nested in a class
//   - Enumerators re-exported by a using-enum declaration
//
// Base expressions with possible side effects are reported with a note, since
// the fix drops them. Accesses spelled in macro expansions are reported
// without a fix.
package analyzer
