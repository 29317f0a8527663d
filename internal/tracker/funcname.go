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

package tracker

import "go/types"

// FuncName is the qualified name of a function or method.
type FuncName struct {
	Path     string // Package path, empty for universe and interface methods
	Receiver string // Receiver type name, empty for functions
	Name     string // Function or method name
}

// String formats the name like "os.Exit" or "(sync.Mutex).Lock".
func (f FuncName) String() string {
	switch {
	case f.Receiver == "" && f.Path == "":
		return f.Name

	case f.Receiver == "":
		return f.Path + "." + f.Name

	case f.Path == "":
		return "(" + f.Receiver + ")." + f.Name

	default:
		return "(" + f.Path + "." + f.Receiver + ")." + f.Name
	}
}

// FuncNameOf returns the [FuncName] of a function.
// Methods of instantiated generic types are reported by their origin.
func FuncNameOf(fun *types.Func) FuncName {
	fun = fun.Origin()

	sig, ok := fun.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		var path string
		if pkg := fun.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Name: fun.Name()}
	}

	return methodName(sig.Recv().Type(), fun.Name())
}

func methodName(recv types.Type, name string) FuncName {
	recv = types.Unalias(recv)
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}

	switch t := recv.(type) {
	case *types.Named:
		obj := t.Obj()

		var path string
		if pkg := obj.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Receiver: obj.Name(), Name: name}

	case *types.Interface:
		return FuncName{Receiver: "interface", Name: name}

	default:
		return FuncName{Receiver: "<invalid>", Name: name}
	}
}
