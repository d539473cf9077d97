package component

import (
	"fmt"
	"strings"
)

// buildRouter assembles a FastAPI router source for a resource. With a
// model present the router gets the full CRUD surface against the
// database; without one it is a skeleton ready for hand-written logic.
func buildRouter(resource string, withModel bool) string {
	className := ClassName(resource)
	plural := Plural(resource)

	if !withModel {
		var b strings.Builder
		b.WriteString("from fastapi import APIRouter\n")
		b.WriteString("\n")
		fmt.Fprintf(&b, "router = APIRouter(prefix=\"/%s\", tags=[%q])\n", plural, plural)
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "@router.get(\"/\")\nasync def list_%s():\n", plural)
		b.WriteString("    return []\n")
		return b.String()
	}

	var b strings.Builder
	b.WriteString("from fastapi import APIRouter, Depends, HTTPException, status\n")
	b.WriteString("from sqlalchemy import select\n")
	b.WriteString("from sqlalchemy.ext.asyncio import AsyncSession\n")
	b.WriteString("\n")
	b.WriteString("from app.dependencies import get_db\n")
	fmt.Fprintf(&b, "from app.models.%s import %s\n", resource, className)
	fmt.Fprintf(&b, "from app.schemas.%s import %sCreate, %sRead, %sUpdate\n",
		resource, className, className, className)
	b.WriteString("\n")
	fmt.Fprintf(&b, "router = APIRouter(prefix=\"/%s\", tags=[%q])\n", plural, plural)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "@router.get(\"/\", response_model=list[%sRead])\n", className)
	fmt.Fprintf(&b, "async def list_%s(db: AsyncSession = Depends(get_db)):\n", plural)
	fmt.Fprintf(&b, "    result = await db.execute(select(%s))\n", className)
	b.WriteString("    return result.scalars().all()\n")
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "@router.get(\"/{item_id}\", response_model=%sRead)\n", className)
	fmt.Fprintf(&b, "async def get_%s(item_id: int, db: AsyncSession = Depends(get_db)):\n", resource)
	fmt.Fprintf(&b, "    item = await db.get(%s, item_id)\n", className)
	b.WriteString("    if item is None:\n")
	fmt.Fprintf(&b, "        raise HTTPException(status_code=status.HTTP_404_NOT_FOUND, detail=\"%s not found\")\n", className)
	b.WriteString("    return item\n")
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "@router.post(\"/\", response_model=%sRead, status_code=status.HTTP_201_CREATED)\n", className)
	fmt.Fprintf(&b, "async def create_%s(payload: %sCreate, db: AsyncSession = Depends(get_db)):\n", resource, className)
	fmt.Fprintf(&b, "    item = %s(**payload.model_dump())\n", className)
	b.WriteString("    db.add(item)\n")
	b.WriteString("    await db.commit()\n")
	b.WriteString("    await db.refresh(item)\n")
	b.WriteString("    return item\n")
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "@router.patch(\"/{item_id}\", response_model=%sRead)\n", className)
	fmt.Fprintf(&b, "async def update_%s(item_id: int, payload: %sUpdate, db: AsyncSession = Depends(get_db)):\n", resource, className)
	fmt.Fprintf(&b, "    item = await db.get(%s, item_id)\n", className)
	b.WriteString("    if item is None:\n")
	fmt.Fprintf(&b, "        raise HTTPException(status_code=status.HTTP_404_NOT_FOUND, detail=\"%s not found\")\n", className)
	b.WriteString("    for key, value in payload.model_dump(exclude_unset=True).items():\n")
	b.WriteString("        setattr(item, key, value)\n")
	b.WriteString("    await db.commit()\n")
	b.WriteString("    await db.refresh(item)\n")
	b.WriteString("    return item\n")
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "@router.delete(\"/{item_id}\", status_code=status.HTTP_204_NO_CONTENT)\n")
	fmt.Fprintf(&b, "async def delete_%s(item_id: int, db: AsyncSession = Depends(get_db)):\n", resource)
	fmt.Fprintf(&b, "    item = await db.get(%s, item_id)\n", className)
	b.WriteString("    if item is None:\n")
	fmt.Fprintf(&b, "        raise HTTPException(status_code=status.HTTP_404_NOT_FOUND, detail=\"%s not found\")\n", className)
	b.WriteString("    await db.delete(item)\n")
	b.WriteString("    await db.commit()\n")
	return b.String()
}
