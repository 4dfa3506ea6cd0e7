// Package utils provides common utility functions for the numcompare
// application. It includes helper functions for number and string
// formatting shared by the report writers and other packages.
package utils
