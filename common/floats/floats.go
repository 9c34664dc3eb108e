// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package floats

// Kernels below round every product to float32 explicitly. The conversion keeps
// the compiler from fusing multiply-adds, so results are identical on every
// architecture.

func dot(a, b []float32) (ret float32) {
	for i := range a {
		ret += float32(a[i] * b[i])
	}
	return
}

// Dot two vectors.
func Dot(a, b []float32) float32 {
	if len(a) != len(b) {
		panic("floats: slice lengths do not match")
	}
	return dot(a, b)
}

// Row returns the i-th row of a row-major matrix with n columns. The returned
// slice shares memory with x.
func Row(x []float32, n, i int) []float32 {
	return x[i*n : (i+1)*n : (i+1)*n]
}
