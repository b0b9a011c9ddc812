package access

import "star-dog-walker/internal/ports/auth"

// Reglas de visibilidad y mutación por recurso.
//
// El modelo es fijo: un dog/walk pertenece a un owner; los walkers
// tienen lectura amplia sobre todos los dogs/walks y son los únicos
// que transicionan el status de un walk. Las notificaciones son
// estrictamente privadas por usuario.
//
// El orden existencia-vs-permiso lo deciden los handlers: id inexistente
// responde 404 antes de evaluar permisos; id existente ajeno responde 403.
// Los clientes distinguen ambos casos, no hay information hiding.

// Solo los owners registran perros.
func CanCreateDog(id auth.Identity) bool {
	return id.IsOwner()
}

// Los walkers ven cualquier perro; los owners solo los propios.
func CanReadDog(id auth.Identity, dogOwnerID string) bool {
	return id.IsWalker() || id.ID == dogOwnerID
}

// El perfil del perro solo lo edita su owner. Los walkers son read-only.
func CanWriteDog(id auth.Identity, dogOwnerID string) bool {
	return id.IsOwner() && id.ID == dogOwnerID
}

func CanDeleteDog(id auth.Identity, dogOwnerID string) bool {
	return id.IsOwner() && id.ID == dogOwnerID
}

// Cualquier identidad puede reservar un walk para un perro que puede ver:
// un walker para cualquier perro, un owner solo para los suyos.
func CanBookWalkFor(id auth.Identity, dogOwnerID string) bool {
	return id.IsWalker() || id.ID == dogOwnerID
}

func CanReadWalk(id auth.Identity, walkOwnerID string) bool {
	return id.IsWalker() || id.ID == walkOwnerID
}

// Los walkers escriben el journal de cualquier walk (notas, fotos, clima);
// un owner solo toca walks propios.
func CanWriteWalk(id auth.Identity, walkOwnerID string) bool {
	return id.IsWalker() || id.ID == walkOwnerID
}

// Cancelación: mismo criterio que escritura (owner el suyo, walker cualquiera).
func CanDeleteWalk(id auth.Identity, walkOwnerID string) bool {
	return CanWriteWalk(id, walkOwnerID)
}

// Transicionar status es exclusivo del rol walker, sea o no "su" walk.
func CanSetWalkStatus(id auth.Identity) bool {
	return id.IsWalker()
}

// Las notificaciones nunca cruzan usuarios.
func OwnsNotification(id auth.Identity, notifUserID string) bool {
	return id.ID == notifUserID
}
