package utils

func ToInt32Ptr(value int32) *int32 {
	return &value
}
