/*
Package dvector offers a random-access sequence container for editing-heavy
workloads.

# Vectors

A Vector behaves much like a Go slice: elements are addressed by a zero-based
index, may be read and overwritten in constant-ish time, and may be iterated
front to back or back to front. Unlike a slice, inserting or erasing in the
middle of a Vector does not move the trailing elements. Every editing operation
is O(log n), independent of the position.

Internally a Vector is an AVL-balanced binary tree. Leaves are windows onto
shared element buffers (see package segment). When an insertion hits the middle
of a leaf, the leaf's window is split in two without copying a single element;
both halves keep pointing into the same buffer. Branches cache the number of
elements below them, which lets the tree route an index to its leaf by
counting.

	Operation     |   Vector        |  Slice
	--------------+-----------------+--------
	Index         |   O(log n)      |   O(1)
	Iterate       |   O(n)          |   O(n)
	Append        |   O(1)*         |   O(1)*
	Insert        |   O(log n)      |   O(n)
	Erase         |   O(log n)      |   O(n)

Appending grows the buffer of the rightmost leaf in place as long as that leaf
ends at its buffer's end.

Vectors are not safe for concurrent mutation. Clients have to synchronize
access themselves.

_________________________________________________________________________

BSD 3-Clause License.

Copyright (c) 2020–21, Norbert Pillmayer.
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package dvector
