// Package vector implements a contiguous, dynamically resizable sequence
// container for Go with an injectable allocator and random-access iterators.
//
// # Overview
//
// A Vector owns one contiguous buffer of slots. The first Size() slots hold
// live elements, the rest up to Capacity() are allocated but empty. The
// buffer is replaced only by an explicit reallocation: Reserve, ShrinkToFit,
// or an insertion that needs more room than the capacity provides.
//
// # Basic Usage
//
//	v, err := vector.New[int]()   // capacity MinCapacity, size 0
//	if err != nil {
//		return err
//	}
//	defer v.Destroy()
//
//	for i := range 12 {
//		if err := v.PushBack(i); err != nil {
//			return err
//		}
//	}
//	fmt.Println(v.Size(), v.Capacity()) // 12 15
//
//	x, err := v.At(20) // errors.Is(err, vector.ErrOutOfRange)
//
// # Growth Policy
//
// When an insertion needs more slots than the capacity, the new capacity is
// one and a half times the old one, floored at the minimum capacity and at
// the number of slots actually needed. Reserve and the Assign family
// allocate exactly what they are asked for; the constructors allocate
// exactly the number of elements they are given.
//
// # Allocators
//
// Storage and element lifetime go through an Allocator:
//
//	a := vector.NewArena[Point](0)
//	defer a.Release()
//	v, err := vector.New(vector.WithAllocator[Point](a))
//
// HeapAllocator (the default) takes memory from the Go heap. Arena is a
// chunked bump allocator; SafeArena shares one between goroutines;
// CountingAllocator records traffic and can be told to fail.
//
// Element types may implement Destroyer to release resources when they
// leave the vector, and Cloner to make copies that share nothing with their
// source.
//
// # Iterators
//
// Begin, End, CBegin and CEnd issue Iterator and ConstIterator values that
// support the full random-access contract: Inc/Dec, PostInc/PostDec,
// Add/Sub, AddAssign/SubAssign, Distance, At, and ordering. Both flavours
// satisfy Position, so they compare freely with each other and can be
// passed to Insert and Erase.
//
// # Important Notes
//
//   - A Vector is not safe for concurrent use
//   - Iterators, Ptr and Data results are invalidated by any reallocation,
//     by insertion or erasure before their position, and by Destroy
//   - Failed allocations leave the vector exactly as it was
//   - Index and Ptr are unchecked; Front and Back panic on an empty vector;
//     only At reports an out-of-range index as an error
package vector
