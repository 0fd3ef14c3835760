package azvfs

import "context"

// FileSelectInfo describes one candidate during a tree traversal.
type FileSelectInfo struct {
	// Base is the object the traversal started from.
	Base FileObject
	// File is the candidate currently being considered.
	File FileObject
	// Depth is the distance from Base; the base itself has depth 0.
	Depth int
}

// FileSelector decides which objects a tree operation includes and how far
// it descends.
type FileSelector interface {
	// IncludeFile decides whether the candidate is part of the selection.
	IncludeFile(ctx context.Context, info FileSelectInfo) (bool, error)

	// TraverseDescendants decides whether the traversal descends into the
	// candidate's children.
	TraverseDescendants(ctx context.Context, info FileSelectInfo) (bool, error)
}

// Stock selectors.
var (
	// SelectAll selects the base object and every descendant.
	SelectAll FileSelector = depthSelector{maxDepth: -1}

	// SelectSelf selects only the base object.
	SelectSelf FileSelector = depthSelector{maxDepth: 0}

	// SelectSelfAndChildren selects the base object and its immediate
	// children without descending further.
	SelectSelfAndChildren FileSelector = depthSelector{maxDepth: 1}

	// SelectFiles selects every descendant file, skipping folders.
	SelectFiles FileSelector = fileSelector{}
)

type depthSelector struct {
	maxDepth int
}

func (s depthSelector) IncludeFile(_ context.Context, info FileSelectInfo) (bool, error) {
	return s.maxDepth < 0 || info.Depth <= s.maxDepth, nil
}

func (s depthSelector) TraverseDescendants(_ context.Context, info FileSelectInfo) (bool, error) {
	return s.maxDepth < 0 || info.Depth < s.maxDepth, nil
}

type fileSelector struct{}

func (fileSelector) IncludeFile(ctx context.Context, info FileSelectInfo) (bool, error) {
	t, err := info.File.Type(ctx)
	if err != nil {
		return false, err
	}

	return t.HasContent(), nil
}

func (fileSelector) TraverseDescendants(context.Context, FileSelectInfo) (bool, error) {
	return true, nil
}

// FindFiles walks the tree below base and collects every object the
// selector includes. With depthwise set, children are collected before
// their parent, which is the order a recursive delete needs.
func FindFiles(ctx context.Context, base FileObject, selector FileSelector, depthwise bool) ([]FileObject, error) {
	var found []FileObject
	if err := walk(ctx, base, base, selector, 0, depthwise, &found); err != nil {
		return nil, err
	}

	return found, nil
}

func walk(ctx context.Context, base, file FileObject, selector FileSelector, depth int, depthwise bool, found *[]FileObject) error {
	info := FileSelectInfo{Base: base, File: file, Depth: depth}

	include, err := selector.IncludeFile(ctx, info)
	if err != nil {
		return err
	}

	if include && !depthwise {
		*found = append(*found, file)
	}

	t, err := file.Type(ctx)
	if err != nil {
		return err
	}

	if t.HasChildren() {
		traverse, err := selector.TraverseDescendants(ctx, info)
		if err != nil {
			return err
		}

		if traverse {
			children, err := file.Children(ctx)
			if err != nil {
				return err
			}

			for _, child := range children {
				if err := walk(ctx, base, child, selector, depth+1, depthwise, found); err != nil {
					return err
				}
			}
		}
	}

	if include && depthwise {
		*found = append(*found, file)
	}

	return nil
}
