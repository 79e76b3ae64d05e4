package bip32

import (
	"strconv"
	"strings"

	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
	"github.com/pkg/errors"
)

type path struct {
	isPrivate bool
	indexes   []uint32
}

// parsePath parses derivation paths of the form m/44'/28'/0'/0/1. A leading
// "m" asks for a private key at the end of the path and a leading "M" for a
// public one. Hardened indexes are marked with a trailing ' or h.
func parsePath(pathString string) (*path, error) {
	parts := strings.Split(pathString, "/")
	isPrivate := false
	switch parts[0] {
	case "m":
		isPrivate = true
	case "M":
		isPrivate = false
	default:
		return nil, errors.Wrapf(ErrInvalidPath, "%s: path should start with m or M", pathString)
	}

	indexes := make([]uint32, len(parts)-1)
	for i, part := range parts[1:] {
		if part == "" {
			return nil, errors.Wrapf(ErrInvalidPath, "%s: empty index at position %d", pathString, i)
		}

		hardened := strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h")
		if hardened {
			part = part[:len(part)-1]
		}

		index64, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidPath, "%s: %s", pathString, err)
		}
		if index64 >= HardenedKeyStart {
			return nil, errors.Wrapf(ErrInvalidPath, "%s: index %d is out of range, use a hardened "+
				"marker instead", pathString, index64)
		}
		index, err := safeconversion.Uint64ToUint32(index64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidPath, "%s: %s", pathString, err)
		}

		if hardened {
			index += HardenedKeyStart
		}
		indexes[i] = index
	}

	return &path{
		isPrivate: isPrivate,
		indexes:   indexes,
	}, nil
}

// DeriveFromPath derives the descendant of the key along the given path. A
// path starting with "M" yields the neutered descendant.
func (k *ExtendedKey) DeriveFromPath(pathString string) (*ExtendedKey, error) {
	path, err := parsePath(pathString)
	if err != nil {
		return nil, err
	}

	return k.path(path)
}

func (k *ExtendedKey) path(path *path) (*ExtendedKey, error) {
	descendantExtKey := k
	for _, index := range path.indexes {
		var err error
		descendantExtKey, err = descendantExtKey.Derive(index)
		if err != nil {
			return nil, err
		}
	}

	if !path.isPrivate {
		return descendantExtKey.Neuter()
	}
	return descendantExtKey, nil
}
