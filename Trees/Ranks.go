package Trees

// Rank [OrderedMap.Rank]
// This function utilizes the sizes of each subtree to provide O(D) performance.
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) Rank(k K) S {
	var ra S = 0
	for cur := u.root; cur != nil; {
		if c := u.cmp(k, cur.key); c < 0 {
			cur = cur.l
		} else if c > 0 {
			ra += cur.l.size() + 1
			cur = cur.r
		} else {
			return ra + cur.l.size()
		}
	}
	return ra
}

// Select [OrderedMap.Select]
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) Select(i S) (K, bool) {
	if i >= u.root.size() {
		return *new(K), false
	}
	for cur := u.root; cur != nil; {
		if ls := cur.l.size(); i < ls {
			cur = cur.l
		} else if i > ls {
			i -= ls + 1
			cur = cur.r
		} else {
			return cur.key, true
		}
	}
	return *new(K), false //only reachable if sizes are corrupt.
}

// Min [OrderedMap.Min]
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) Min() (K, bool) {
	if u.root == nil {
		return *new(K), false
	}
	return leftmost(u.root).key, true
}

// Max [OrderedMap.Max]
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) Max() (K, bool) {
	if u.root == nil {
		return *new(K), false
	}
	return rightmost(u.root).key, true
}

// Floor [OrderedMap.Floor]
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) Floor(k K) (K, bool) {
	var p *node[K, V, S]
	for cur := u.root; cur != nil; {
		if c := u.cmp(k, cur.key); c < 0 {
			cur = cur.l
		} else if c > 0 {
			p = cur
			cur = cur.r
		} else {
			return cur.key, true
		}
	}
	if p == nil {
		return *new(K), false
	}
	return p.key, true
}

// Ceiling [OrderedMap.Ceiling]
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) Ceiling(k K) (K, bool) {
	var p *node[K, V, S]
	for cur := u.root; cur != nil; {
		if c := u.cmp(k, cur.key); c > 0 {
			cur = cur.r
		} else if c < 0 {
			p = cur
			cur = cur.l
		} else {
			return cur.key, true
		}
	}
	if p == nil {
		return *new(K), false
	}
	return p.key, true
}
