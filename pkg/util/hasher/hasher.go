// Package hasher annotates created workloads with a hash of their desired
// state, so a reconciliation pass can detect drift without comparing the full
// object field by field.
package hasher

import (
	"encoding/json"
	"fmt"
	"hash/fnv"

	"github.com/pkg/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// AnnotationHash carries the hash of the desired state on created objects.
const AnnotationHash = "internal.mysql.amfleurke.com/template-hash"

func GenerateHash(object any) (string, error) {
	data, err := json.Marshal(object)
	if err != nil {
		return "", errors.WithStack(err)
	}

	hasher := fnv.New32()

	_, err = hasher.Write(data)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return fmt.Sprintf("%d", hasher.Sum32()), nil
}

// AddAnnotation stores the hash of the given desired state on the object.
func AddAnnotation(object metav1.Object, desiredState any) error {
	hash, err := GenerateHash(desiredState)
	if err != nil {
		return err
	}

	annotations := object.GetAnnotations()
	if annotations == nil {
		annotations = map[string]string{}
	}

	annotations[AnnotationHash] = hash
	object.SetAnnotations(annotations)

	return nil
}

func IsAnnotationDifferent(currentObject, desiredObject metav1.Object) bool {
	return getHash(currentObject) != getHash(desiredObject)
}

func getHash(object metav1.Object) string {
	if annotations := object.GetAnnotations(); annotations != nil {
		return annotations[AnnotationHash]
	}

	return ""
}
