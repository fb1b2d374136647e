package Queues

// Queue is a FIFO or LIFO container depending on the implementation. Pop and Peek
// work on the same end; Push works on the other end for FIFO implementations and
// on the same end for LIFO ones.
type Queue[T any] interface {
	Push(item T)
	//Pop the next item. Returns EmptyQueueError if there is nothing to pop.
	Pop() (T, error)
	//Peek at the next item without removing it. The zero value is returned when Empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a FIFO Queue backed by a circular slice.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

// Stack is a LIFO Queue backed by a slice.
type Stack[T any] interface {
	Queue[T]
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
