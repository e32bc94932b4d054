package repository

// CodeRepository define el puerto del resolutor de códigos: mapea el código
// crudo leído por el dispositivo al identificador de producto. Un código
// desconocido no es un error del caller: se reporta con domain.ErrNotFound
// y el intento se descarta.
type CodeRepository interface {
	Lookup(codeID string) (productID string, err error)
}
